package ownerauthenticator

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/cellquery"
	"github.com/pkg/errors"
)

type ownerAuthenticator struct{}

// New instantiates a new OwnerAuthenticator
func New() model.OwnerAuthenticator {
	return &ownerAuthenticator{}
}

// AuthenticateOwner checks that an input is locked by the lock hash carried
// in the args of the companion's type script. Only membership matters: the
// owner's lock may appear at any input position and any number of times.
func (a *ownerAuthenticator) AuthenticateOwner(ctx externalapi.ExecutionContext, companion *model.Companion) error {
	if companion.OwnerAuthenticated {
		return nil
	}

	ownerLockHash, err := a.ownerLockHash(ctx, companion)
	if err != nil {
		return err
	}
	found, err := cellquery.ContainsLockHash(ctx, externalapi.SourceInput, ownerLockHash)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ruleerrors.ErrOwnerLockScriptNotMatch,
			"no input is locked by owner lock hash %x", ownerLockHash)
	}

	log.Debugf("Owner lock hash %x is among the inputs", ownerLockHash)
	return nil
}

func (a *ownerAuthenticator) ownerLockHash(ctx externalapi.ExecutionContext, companion *model.Companion) ([]byte, error) {
	typeScript := companion.TypeScript
	if typeScript == nil {
		var err error
		typeScript, err = ctx.LoadCellType(companion.Index, companion.Source)
		if err != nil {
			return nil, err
		}
	}
	if typeScript == nil {
		return nil, errors.Wrapf(ruleerrors.ErrItemMissing,
			"companion %s cell %d has no type script", companion.Source, companion.Index)
	}
	return typeScript.Args, nil
}
