package cycles

import (
	"testing"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/testutils"
	"github.com/pkg/errors"
)

func TestMeterConsume(t *testing.T) {
	meter := NewMeter(1000)
	if err := meter.Consume(600); err != nil {
		t.Fatalf("Consume: %+v", err)
	}
	if err := meter.Consume(400); err != nil {
		t.Fatalf("Consume up to the limit: %+v", err)
	}
	if err := meter.Consume(1); !errors.Is(err, ruleerrors.ErrExceededMaxCycles) {
		t.Fatalf("Consume past the limit: expected ErrExceededMaxCycles, got %v", err)
	}
	if err := meter.Consume(0); !errors.Is(err, ruleerrors.ErrExceededMaxCycles) {
		t.Fatalf("Consume after running out: expected ErrExceededMaxCycles, got %v", err)
	}
	if meter.Consumed() != 1001 {
		t.Fatalf("Consumed returned %d, want 1001", meter.Consumed())
	}
}

func TestUnlimitedMeter(t *testing.T) {
	meter := NewMeter(Unlimited)
	for i := 0; i < 1000; i++ {
		if err := meter.Consume(1 << 40); err != nil {
			t.Fatalf("Consume: %+v", err)
		}
	}
	if meter.Err() != nil {
		t.Fatalf("unlimited meter ran out: %v", meter.Err())
	}
}

func TestMeteredContextCharges(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	infoTx := testutils.DirectLockTransaction(lock, nil, testutils.USDCoinPayload())
	meter := NewMeter(Unlimited)
	ctx := meter.WrapContext(infoTx.Context())

	if _, err := ctx.LoadCellLockHash(0, externalapi.SourceInput); err != nil {
		t.Fatalf("LoadCellLockHash: %+v", err)
	}
	if meter.Consumed() != LoadCycles+externalapi.DomainHashSize*ByteCycles {
		t.Fatalf("lock hash load charged %d cycles", meter.Consumed())
	}

	before := meter.Consumed()
	if _, err := ctx.LoadCellData(5, externalapi.SourceOutput); !errors.Is(err, ruleerrors.ErrIndexOutOfBound) {
		t.Fatalf("LoadCellData past the outputs: expected ErrIndexOutOfBound, got %v", err)
	}
	if meter.Consumed()-before != LoadCycles {
		t.Fatalf("failed load charged %d cycles", meter.Consumed()-before)
	}

	before = meter.Consumed()
	meter.WrapHasher(testutils.Hasher).Hash(make([]byte, 100))
	if meter.Consumed()-before != HashCycles+100*ByteCycles {
		t.Fatalf("hash charged %d cycles", meter.Consumed()-before)
	}
}

func TestMeteredContextStopsAfterRunningOut(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	infoTx := testutils.DirectLockTransaction(lock, nil, testutils.USDCoinPayload())
	counting := testutils.NewCountingContext(infoTx.Transaction, infoTx.InfoScript)
	meter := NewMeter(HashCycles)
	ctx := meter.WrapContext(counting)

	meter.WrapHasher(testutils.Hasher).Hash([]byte("exhaust"))
	if !errors.Is(meter.Err(), ruleerrors.ErrExceededMaxCycles) {
		t.Fatalf("hashing past the limit did not exhaust the meter")
	}
	if _, err := ctx.LoadCellData(0, externalapi.SourceGroupOutput); !errors.Is(err, ruleerrors.ErrExceededMaxCycles) {
		t.Fatalf("expected ErrExceededMaxCycles, got %v", err)
	}
	if counting.Loads() != 0 {
		t.Fatalf("an exhausted meter still reached the underlying context")
	}
}
