package companionlocator

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/cellquery"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/scripthashing"
	"github.com/kaspanet/infoscript/infrastructure/logger"
	"github.com/pkg/errors"
)

// outputDescriptorHashLocator loads each output's type script and hashes it
// itself, once per candidate.
type outputDescriptorHashLocator struct {
	strictLookup bool
}

func (l *outputDescriptorHashLocator) LocateCompanion(ctx externalapi.ExecutionContext, hasher externalapi.Hasher,
	args []byte) (*model.Companion, error) {

	if hasher == nil {
		return nil, errors.New("locating companions by descriptor hash requires a hasher")
	}
	index, typeScript, err := cellquery.FindType(ctx, externalapi.SourceOutput, func(typeScript *externalapi.Script) bool {
		return scripthashing.ScriptHash(hasher, typeScript).EqualBytes(args)
	})
	if err != nil {
		return nil, err
	}
	if index == cellquery.NotFound {
		if l.strictLookup {
			return nil, errors.Wrapf(ruleerrors.ErrInfoTypeArgsNotMatch,
				"no output type script hashes to %x", args)
		}
		return nil, errors.Wrapf(ruleerrors.ErrItemMissing,
			"no output type script hashes to %x", args)
	}

	log.Debugf("Found companion with descriptor hash %x at output %d", args, index)
	log.Tracef("Companion type script: %s", logger.NewLogClosure(func() string {
		return spew.Sdump(typeScript)
	}))
	return &model.Companion{
		Source:     externalapi.SourceOutput,
		Index:      index,
		TypeScript: typeScript,
	}, nil
}
