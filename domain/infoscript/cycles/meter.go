// Package cycles meters the work a script verification performs against a
// fixed budget, the way the host VM does. Every load from the execution
// context and every hash is charged; running out of cycles fails the
// verification with ErrExceededMaxCycles.
package cycles

import (
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/pkg/errors"
)

// Costs charged per operation.
const (
	// LoadCycles is charged for every load from the execution context,
	// whether it succeeds or not.
	LoadCycles uint64 = 500

	// HashCycles is charged for every hash computed by the script.
	HashCycles uint64 = 2000

	// ByteCycles is charged for every byte loaded or hashed.
	ByteCycles uint64 = 1
)

// Unlimited is the limit of a meter that never runs out.
const Unlimited uint64 = 0

// Meter accumulates consumed cycles. A Meter belongs to a single
// verification and is not safe for concurrent use.
type Meter struct {
	limit    uint64
	consumed uint64
	err      error
}

// NewMeter returns a Meter allowing limit cycles, or any number of cycles if
// limit is Unlimited.
func NewMeter(limit uint64) *Meter {
	return &Meter{limit: limit}
}

// Consume charges cycles. It returns ErrExceededMaxCycles once the total
// goes past the limit, and on every call after that.
func (m *Meter) Consume(cycles uint64) error {
	if m.err != nil {
		return m.err
	}
	m.consumed += cycles
	if m.limit != Unlimited && m.consumed > m.limit {
		m.err = errors.Wrapf(ruleerrors.ErrExceededMaxCycles, "consumed %d cycles, limit is %d", m.consumed, m.limit)
	}
	return m.err
}

// Consumed returns the cycles charged so far.
func (m *Meter) Consumed() uint64 {
	return m.consumed
}

// Err returns ErrExceededMaxCycles if the meter ran out, nil otherwise.
func (m *Meter) Err() error {
	return m.err
}

// WrapHasher returns a Hasher charging this meter for every hash. Hashing
// cannot fail, so running out while hashing is only visible through Err and
// through the next context load.
func (m *Meter) WrapHasher(hasher externalapi.Hasher) externalapi.Hasher {
	return &meteredHasher{meter: m, hasher: hasher}
}

type meteredHasher struct {
	meter  *Meter
	hasher externalapi.Hasher
}

func (h *meteredHasher) Hash(data []byte) *externalapi.DomainHash {
	_ = h.meter.Consume(HashCycles + uint64(len(data))*ByteCycles)
	return h.hasher.Hash(data)
}
