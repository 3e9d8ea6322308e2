package companionlocator

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/cellquery"
	"github.com/pkg/errors"
)

// inputLockHashLocator treats the args as the owner's lock hash. Finding an
// input locked by it both locates the companion and authenticates the owner.
type inputLockHashLocator struct{}

func (l *inputLockHashLocator) LocateCompanion(ctx externalapi.ExecutionContext, _ externalapi.Hasher, args []byte) (*model.Companion, error) {
	index, err := cellquery.FindLockHash(ctx, externalapi.SourceInput, func(lockHash *externalapi.DomainHash) bool {
		return lockHash.EqualBytes(args)
	})
	if err != nil {
		return nil, err
	}
	if index == cellquery.NotFound {
		return nil, errors.Wrapf(ruleerrors.ErrOwnerLockScriptNotExist,
			"no input is locked by lock hash %x", args)
	}

	log.Debugf("Found owner lock hash %x at input %d", args, index)
	return &model.Companion{
		Source:             externalapi.SourceInput,
		Index:              index,
		OwnerAuthenticated: true,
	}, nil
}
