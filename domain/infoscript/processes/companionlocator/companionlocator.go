package companionlocator

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/pkg/errors"
)

// New returns the CompanionLocator implementing strategy.
//
// strictLookup only affects LocateByOutputDescriptorHash: when set, a missing
// companion is reported as ErrInfoTypeArgsNotMatch, otherwise as the host
// lookup failure ErrItemMissing.
func New(strategy model.LocatorStrategy, strictLookup bool) (model.CompanionLocator, error) {
	switch strategy {
	case model.LocateByInputLockHash:
		return &inputLockHashLocator{}, nil
	case model.LocateByOutputTypeHash:
		return &outputTypeHashLocator{}, nil
	case model.LocateByOutputDescriptorHash:
		return &outputDescriptorHashLocator{strictLookup: strictLookup}, nil
	default:
		return nil, errors.Errorf("unknown locator strategy %d", strategy)
	}
}
