package companionlocator

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/cellquery"
	"github.com/pkg/errors"
)

// outputTypeHashLocator compares the args against the type hashes the host
// reports for the outputs.
type outputTypeHashLocator struct{}

func (l *outputTypeHashLocator) LocateCompanion(ctx externalapi.ExecutionContext, _ externalapi.Hasher, args []byte) (*model.Companion, error) {
	index, err := cellquery.FindTypeHash(ctx, externalapi.SourceOutput, func(typeHash *externalapi.DomainHash) bool {
		return typeHash.EqualBytes(args)
	})
	if err != nil {
		return nil, err
	}
	if index == cellquery.NotFound {
		return nil, errors.Wrapf(ruleerrors.ErrInfoTypeArgsNotMatch,
			"no output has type hash %x", args)
	}

	log.Debugf("Found companion with type hash %x at output %d", args, index)
	return &model.Companion{
		Source: externalapi.SourceOutput,
		Index:  index,
	}, nil
}
