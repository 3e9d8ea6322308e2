package cycles

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
)

// WrapContext returns an ExecutionContext charging this meter for every load.
// Once the meter has run out, loads fail without reaching ctx.
func (m *Meter) WrapContext(ctx externalapi.ExecutionContext) externalapi.ExecutionContext {
	return &meteredContext{meter: m, ctx: ctx}
}

type meteredContext struct {
	meter *Meter
	ctx   externalapi.ExecutionContext
}

func (c *meteredContext) charge(loadedBytes int) error {
	return c.meter.Consume(LoadCycles + uint64(loadedBytes)*ByteCycles)
}

func (c *meteredContext) LoadScript() (*externalapi.Script, error) {
	if err := c.meter.Err(); err != nil {
		return nil, err
	}
	script, err := c.ctx.LoadScript()
	size := 0
	if script != nil {
		size = externalapi.DomainHashSize + 1 + len(script.Args)
	}
	if chargeErr := c.charge(size); chargeErr != nil {
		return nil, chargeErr
	}
	return script, err
}

func (c *meteredContext) LoadCellLockHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	if err := c.meter.Err(); err != nil {
		return nil, err
	}
	lockHash, err := c.ctx.LoadCellLockHash(index, source)
	if chargeErr := c.charge(hashSize(lockHash)); chargeErr != nil {
		return nil, chargeErr
	}
	return lockHash, err
}

func (c *meteredContext) LoadCellTypeHash(index int, source externalapi.Source) (*externalapi.DomainHash, error) {
	if err := c.meter.Err(); err != nil {
		return nil, err
	}
	typeHash, err := c.ctx.LoadCellTypeHash(index, source)
	if chargeErr := c.charge(hashSize(typeHash)); chargeErr != nil {
		return nil, chargeErr
	}
	return typeHash, err
}

func (c *meteredContext) LoadCellType(index int, source externalapi.Source) (*externalapi.Script, error) {
	if err := c.meter.Err(); err != nil {
		return nil, err
	}
	typeScript, err := c.ctx.LoadCellType(index, source)
	size := 0
	if typeScript != nil {
		size = externalapi.DomainHashSize + 1 + len(typeScript.Args)
	}
	if chargeErr := c.charge(size); chargeErr != nil {
		return nil, chargeErr
	}
	return typeScript, err
}

func (c *meteredContext) LoadCellData(index int, source externalapi.Source) ([]byte, error) {
	if err := c.meter.Err(); err != nil {
		return nil, err
	}
	data, err := c.ctx.LoadCellData(index, source)
	if chargeErr := c.charge(len(data)); chargeErr != nil {
		return nil, chargeErr
	}
	return data, err
}

func hashSize(hash *externalapi.DomainHash) int {
	if hash == nil {
		return 0
	}
	return externalapi.DomainHashSize
}
