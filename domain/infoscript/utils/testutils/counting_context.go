package testutils

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/txcontext"
)

// CountingContext is a txcontext.Context that records every successful cell
// load, so tests can assert how far a scan went and which sources a
// verification touched.
type CountingContext struct {
	*txcontext.Context
	loads map[externalapi.Source]int
}

// NewCountingContext returns a CountingContext for typeScript running in tx.
func NewCountingContext(tx *externalapi.Transaction, typeScript *externalapi.Script) *CountingContext {
	return &CountingContext{
		Context: txcontext.New(tx, typeScript, Hasher),
		loads:   make(map[externalapi.Source]int),
	}
}

// Loads returns the number of successful cell loads from any source.
func (c *CountingContext) Loads() int {
	total := 0
	for _, count := range c.loads {
		total += count
	}
	return total
}

// LoadsFrom returns the number of successful cell loads from source.
func (c *CountingContext) LoadsFrom(source externalapi.Source) int {
	return c.loads[source]
}

func (c *CountingContext) count(source externalapi.Source, err error) {
	if err == nil {
		c.loads[source]++
	}
}

// LoadCellLockHash implements externalapi.ExecutionContext.
func (c *CountingContext) LoadCellLockHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	lockHash, err := c.Context.LoadCellLockHash(index, source)
	c.count(source, err)
	return lockHash, err
}

// LoadCellTypeHash implements externalapi.ExecutionContext.
func (c *CountingContext) LoadCellTypeHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	typeHash, err := c.Context.LoadCellTypeHash(index, source)
	c.count(source, err)
	return typeHash, err
}

// LoadCellType implements externalapi.ExecutionContext.
func (c *CountingContext) LoadCellType(index int, source externalapi.Source) (*externalapi.Script, error) {
	typeScript, err := c.Context.LoadCellType(index, source)
	c.count(source, err)
	return typeScript, err
}

// LoadCellData implements externalapi.ExecutionContext.
func (c *CountingContext) LoadCellData(index int, source externalapi.Source) ([]byte, error) {
	data, err := c.Context.LoadCellData(index, source)
	c.count(source, err)
	return data, err
}
