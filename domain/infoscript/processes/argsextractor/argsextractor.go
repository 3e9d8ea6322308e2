package argsextractor

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
)

type argsExtractor struct{}

// New instantiates a new ArgsExtractor
func New() model.ArgsExtractor {
	return &argsExtractor{}
}

// ExtractArgs returns the args of the running script as they are. Failing to
// load the script is a host failure and is returned unchanged.
func (ae *argsExtractor) ExtractArgs(ctx externalapi.ExecutionContext) ([]byte, error) {
	script, err := ctx.LoadScript()
	if err != nil {
		return nil, err
	}
	log.Tracef("Running info script %s", script)
	return script.Args, nil
}
