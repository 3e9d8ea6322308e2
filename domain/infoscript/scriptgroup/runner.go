// Package scriptgroup runs the info script over a whole transaction: once for
// every distinct info type script the transaction's cells carry.
package scriptgroup

import (
	"github.com/kaspanet/infoscript/domain/infoscript"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/txcontext"
	"github.com/pkg/errors"
)

// Group is a distinct type script and the cells carrying it.
type Group struct {
	Script        *externalapi.Script
	InputIndices  []int
	OutputIndices []int
}

// Runner verifies the info script groups of transactions.
type Runner struct {
	verifier     infoscript.Verifier
	hasher       externalapi.Hasher
	infoCodeHash externalapi.DomainHash
}

// NewRunner returns a Runner verifying with verifier every type script whose
// code hash is infoCodeHash. Type scripts with other code hashes belong to
// other contracts and are ignored.
func NewRunner(verifier infoscript.Verifier, hasher externalapi.Hasher, infoCodeHash *externalapi.DomainHash) *Runner {
	return &Runner{
		verifier:     verifier,
		hasher:       hasher,
		infoCodeHash: *infoCodeHash,
	}
}

// Groups returns the info script groups of tx, ordered by their first cell:
// all inputs first, then all outputs.
func (r *Runner) Groups(tx *externalapi.Transaction) []*Group {
	var groups []*Group
	groupOf := func(script *externalapi.Script) *Group {
		for _, group := range groups {
			if group.Script.Equal(script) {
				return group
			}
		}
		group := &Group{Script: script}
		groups = append(groups, group)
		return group
	}

	for i, input := range tx.Inputs {
		if input.Cell == nil || !r.isInfoScript(input.Cell.Type) {
			continue
		}
		group := groupOf(input.Cell.Type)
		group.InputIndices = append(group.InputIndices, i)
	}
	for i, output := range tx.Outputs {
		if !r.isInfoScript(output.Type) {
			continue
		}
		group := groupOf(output.Type)
		group.OutputIndices = append(group.OutputIndices, i)
	}
	return groups
}

func (r *Runner) isInfoScript(script *externalapi.Script) bool {
	return script != nil && script.CodeHash.Equal(&r.infoCodeHash)
}

// VerifyTransaction runs the info script for each group of tx and returns the
// total cycles consumed. The first failing group stops the run with a
// *ScriptError.
func (r *Runner) VerifyTransaction(tx *externalapi.Transaction) (uint64, error) {
	var totalCycles uint64
	for _, group := range r.Groups(tx) {
		ctx := txcontext.New(tx, group.Script, r.hasher)
		consumed, err := r.verifier.VerifyAndMeasure(ctx)
		totalCycles += consumed
		if err != nil {
			return totalCycles, r.scriptError(group, err)
		}
		log.Debugf("Info script group %s passed in %d cycles", group.Script, consumed)
	}
	return totalCycles, nil
}

func (r *Runner) scriptError(group *Group, err error) *ScriptError {
	scriptErr := &ScriptError{inner: err}
	if len(group.InputIndices) > 0 {
		scriptErr.Source = externalapi.SourceInput
		scriptErr.Index = group.InputIndices[0]
	} else {
		scriptErr.Source = externalapi.SourceOutput
		scriptErr.Index = group.OutputIndices[0]
	}

	if errors.Is(err, ruleerrors.ErrExceededMaxCycles) {
		scriptErr.Kind = ExceededMaximumCycles
	} else if code, ok := r.verifier.ExitCode(err); ok {
		scriptErr.Kind = ValidationFailure
		scriptErr.Code = code
	} else {
		scriptErr.Kind = UnmappedFailure
	}
	log.Debugf("Info script group %s failed: %s", group.Script, scriptErr)
	return scriptErr
}
