package model

import "github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"

// ArgsExtractor reads the args of the running script
type ArgsExtractor interface {
	ExtractArgs(ctx externalapi.ExecutionContext) ([]byte, error)
}
