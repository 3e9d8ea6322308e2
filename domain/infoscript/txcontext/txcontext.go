// Package txcontext provides the execution context a type script sees while
// a resolved transaction is verified.
package txcontext

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/scripthashing"
	"github.com/pkg/errors"
)

// Context is an externalapi.ExecutionContext over an in-memory transaction.
// It never modifies the transaction, so a single transaction may back any
// number of contexts.
type Context struct {
	tx     *externalapi.Transaction
	script *externalapi.Script
	hasher externalapi.Hasher

	groupInputs  []int
	groupOutputs []int
}

// New returns the context typeScript runs in while tx is verified. The
// script group consists of every resolved input and every output whose type
// script equals typeScript.
func New(tx *externalapi.Transaction, typeScript *externalapi.Script, hasher externalapi.Hasher) *Context {
	context := &Context{
		tx:     tx,
		script: typeScript,
		hasher: hasher,
	}
	for i, input := range tx.Inputs {
		if input.Cell != nil && input.Cell.Type.Equal(typeScript) {
			context.groupInputs = append(context.groupInputs, i)
		}
	}
	for i, output := range tx.Outputs {
		if output.Type.Equal(typeScript) {
			context.groupOutputs = append(context.groupOutputs, i)
		}
	}
	return context
}

// GroupInputIndices returns the transaction input indexes of the script group.
func (c *Context) GroupInputIndices() []int {
	return c.groupInputs
}

// GroupOutputIndices returns the transaction output indexes of the script group.
func (c *Context) GroupOutputIndices() []int {
	return c.groupOutputs
}

// LoadScript returns a copy of the running script.
func (c *Context) LoadScript() (*externalapi.Script, error) {
	return c.script.Clone(), nil
}

// LoadCellLockHash implements externalapi.ExecutionContext.
func (c *Context) LoadCellLockHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	cell, err := c.cell(index, source)
	if err != nil {
		return nil, err
	}
	if cell.Lock == nil {
		return nil, errors.Wrapf(ruleerrors.ErrItemMissing, "%s cell %d has no lock script", source, index)
	}
	return scripthashing.ScriptHash(c.hasher, cell.Lock), nil
}

// LoadCellTypeHash implements externalapi.ExecutionContext.
func (c *Context) LoadCellTypeHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	cell, err := c.cell(index, source)
	if err != nil {
		return nil, err
	}
	if cell.Type == nil {
		return nil, nil
	}
	return scripthashing.ScriptHash(c.hasher, cell.Type), nil
}

// LoadCellType implements externalapi.ExecutionContext.
func (c *Context) LoadCellType(index int, source externalapi.Source) (*externalapi.Script, error) {
	cell, err := c.cell(index, source)
	if err != nil {
		return nil, err
	}
	return cell.Type.Clone(), nil
}

// LoadCellData implements externalapi.ExecutionContext.
func (c *Context) LoadCellData(index int, source externalapi.Source) ([]byte, error) {
	cell, err := c.cell(index, source)
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(cell.Data))
	copy(data, cell.Data)
	return data, nil
}

func (c *Context) cell(index int, source externalapi.Source) (*externalapi.Cell, error) {
	switch source {
	case externalapi.SourceInput:
		return c.inputCell(index, source)
	case externalapi.SourceOutput:
		return c.outputCell(index, source)
	case externalapi.SourceGroupInput:
		if index < 0 || index >= len(c.groupInputs) {
			return nil, indexOutOfBound(index, source)
		}
		return c.inputCell(c.groupInputs[index], source)
	case externalapi.SourceGroupOutput:
		if index < 0 || index >= len(c.groupOutputs) {
			return nil, indexOutOfBound(index, source)
		}
		return c.outputCell(c.groupOutputs[index], source)
	default:
		return nil, errors.Errorf("unknown cell source %s", source)
	}
}

func (c *Context) inputCell(index int, source externalapi.Source) (*externalapi.Cell, error) {
	if index < 0 || index >= len(c.tx.Inputs) {
		return nil, indexOutOfBound(index, source)
	}
	input := c.tx.Inputs[index]
	if input.Cell == nil {
		return nil, ruleerrors.NewErrCellNotFound(input.PreviousOutput)
	}
	return input.Cell, nil
}

func (c *Context) outputCell(index int, source externalapi.Source) (*externalapi.Cell, error) {
	if index < 0 || index >= len(c.tx.Outputs) {
		return nil, indexOutOfBound(index, source)
	}
	return c.tx.Outputs[index], nil
}

func indexOutOfBound(index int, source externalapi.Source) error {
	return errors.Wrapf(ruleerrors.ErrIndexOutOfBound, "%s index %d", source, index)
}
