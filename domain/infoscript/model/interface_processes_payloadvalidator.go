package model

import "github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"

// PayloadValidator checks the structure of the running script's own output
// cell data
type PayloadValidator interface {
	ValidatePayload(ctx externalapi.ExecutionContext) (bool, error)
}
