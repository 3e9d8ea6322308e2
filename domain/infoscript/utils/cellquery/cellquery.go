// Package cellquery enumerates the cells of a transaction source through the
// index-based loads of an execution context. Every enumeration walks the
// source in order, stops at the first match and never materializes the cells.
package cellquery

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/pkg/errors"
)

// NotFound is the index returned when no cell matched.
const NotFound = -1

func isEndOfSource(err error) bool {
	return errors.Is(err, ruleerrors.ErrIndexOutOfBound)
}

// FindLockHash returns the index of the first cell of source whose lock hash
// satisfies match.
func FindLockHash(ctx externalapi.ExecutionContext, source externalapi.Source,
	match func(lockHash *externalapi.DomainHash) bool) (int, error) {

	for index := 0; ; index++ {
		lockHash, err := ctx.LoadCellLockHash(index, source)
		if err != nil {
			if isEndOfSource(err) {
				return NotFound, nil
			}
			return NotFound, err
		}
		if match(lockHash) {
			return index, nil
		}
	}
}

// ContainsLockHash returns whether any cell of source is locked by a lock
// whose hash is exactly lockHash.
func ContainsLockHash(ctx externalapi.ExecutionContext, source externalapi.Source, lockHash []byte) (bool, error) {
	index, err := FindLockHash(ctx, source, func(candidate *externalapi.DomainHash) bool {
		return candidate.EqualBytes(lockHash)
	})
	if err != nil {
		return false, err
	}
	return index != NotFound, nil
}

// FindTypeHash returns the index of the first cell of source with a type
// script whose hash satisfies match. Cells without a type script are skipped.
func FindTypeHash(ctx externalapi.ExecutionContext, source externalapi.Source,
	match func(typeHash *externalapi.DomainHash) bool) (int, error) {

	for index := 0; ; index++ {
		typeHash, err := ctx.LoadCellTypeHash(index, source)
		if err != nil {
			if isEndOfSource(err) {
				return NotFound, nil
			}
			return NotFound, err
		}
		if typeHash != nil && match(typeHash) {
			return index, nil
		}
	}
}

// FindType returns the index and type script of the first cell of source
// whose type script satisfies match. Cells without a type script are
// skipped.
func FindType(ctx externalapi.ExecutionContext, source externalapi.Source,
	match func(typeScript *externalapi.Script) bool) (int, *externalapi.Script, error) {

	for index := 0; ; index++ {
		typeScript, err := ctx.LoadCellType(index, source)
		if err != nil {
			if isEndOfSource(err) {
				return NotFound, nil, nil
			}
			return NotFound, nil, err
		}
		if typeScript != nil && match(typeScript) {
			return index, typeScript, nil
		}
	}
}
