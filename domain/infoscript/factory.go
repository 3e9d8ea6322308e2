package infoscript

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/processes/argsextractor"
	"github.com/kaspanet/infoscript/domain/infoscript/processes/companionlocator"
	"github.com/kaspanet/infoscript/domain/infoscript/processes/ownerauthenticator"
	"github.com/kaspanet/infoscript/domain/infoscript/processes/payloadvalidator"
	"github.com/pkg/errors"
)

// Factory instantiates new Verifiers
type Factory interface {
	NewVerifier(config *Config, hasher externalapi.Hasher) (Verifier, error)
}

type factory struct{}

// NewFactory creates a new Verifier factory
func NewFactory() Factory {
	return &factory{}
}

// NewVerifier instantiates a new Verifier
func (f *factory) NewVerifier(config *Config, hasher externalapi.Hasher) (Verifier, error) {
	if config == nil {
		config = NewConfig()
	}
	if config.Variant == nil {
		return nil, errors.New("config has no variant")
	}
	if hasher == nil {
		return nil, errors.New("a hasher is required")
	}
	companionLocator, err := companionlocator.New(config.Variant.Locator, config.Variant.StrictCompanionLookup)
	if err != nil {
		return nil, err
	}

	var payloadValidator model.PayloadValidator
	if config.Variant.ValidatePayload {
		payloadValidator = payloadvalidator.New()
	}

	return &verifier{
		variant:            config.Variant,
		maxCycles:          config.MaxCycles,
		hasher:             hasher,
		argsExtractor:      argsextractor.New(),
		companionLocator:   companionLocator,
		ownerAuthenticator: ownerauthenticator.New(),
		payloadValidator:   payloadValidator,
	}, nil
}
