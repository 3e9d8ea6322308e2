package scriptgroup

import (
	"testing"

	"github.com/kaspanet/infoscript/domain/infoscript"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/testutils"
	"github.com/pkg/errors"
)

func newRunner(t *testing.T, variant *infoscript.Variant, maxCycles uint64) *Runner {
	config := infoscript.NewConfig()
	config.Variant = variant
	config.MaxCycles = maxCycles
	verifier, err := infoscript.NewFactory().NewVerifier(config, testutils.Hasher)
	if err != nil {
		t.Fatalf("NewVerifier: %+v", err)
	}
	return NewRunner(verifier, testutils.Hasher, &testutils.InfoScriptCodeHash)
}

func TestVerifyTransactionSucceeds(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	infoTx := testutils.DirectLockTransaction(lock, testutils.ScriptHash(lock), testutils.USDCoinPayload())

	cycles, err := newRunner(t, &infoscript.DirectLockVariant, infoscript.DefaultMaxCycles).
		VerifyTransaction(infoTx.Transaction)
	if err != nil {
		t.Fatalf("VerifyTransaction: %+v", err)
	}
	if cycles == 0 || cycles > infoscript.DefaultMaxCycles {
		t.Fatalf("unexpected cycle count %d", cycles)
	}
}

func TestVerifyTransactionReportsFailingCell(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	infoTx := testutils.DirectLockTransaction(lock, []byte("Hello world"), testutils.USDCoinPayload())

	_, err := newRunner(t, &infoscript.DirectLockVariant, infoscript.DefaultMaxCycles).
		VerifyTransaction(infoTx.Transaction)
	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("expected a ScriptError, got %+v", err)
	}
	if scriptErr.Error() != "ValidationFailure(5) at output_type_script(1)" {
		t.Fatalf("unexpected error %q", scriptErr)
	}
	if !errors.Is(err, ruleerrors.ErrOwnerLockScriptNotExist) {
		t.Fatalf("the ScriptError does not wrap ErrOwnerLockScriptNotExist")
	}
}

func TestVerifyTransactionExceedingCycles(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	infoTx := testutils.DirectLockTransaction(lock, testutils.ScriptHash(lock), testutils.USDCoinPayload())

	_, err := newRunner(t, &infoscript.DirectLockVariant, 100).VerifyTransaction(infoTx.Transaction)
	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) || scriptErr.Kind != ExceededMaximumCycles {
		t.Fatalf("expected ExceededMaximumCycles, got %+v", err)
	}
	if scriptErr.Error() != "ExceededMaximumCycles at output_type_script(1)" {
		t.Fatalf("unexpected error %q", scriptErr)
	}
}

func TestGroups(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	first := testutils.InfoTypeScript([]byte("first"))
	second := testutils.InfoTypeScript([]byte("second"))

	tx := testutils.NewTransactionBuilder().
		AddInput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: second}).
		AddOutput(&externalapi.Cell{Capacity: 100, Lock: lock, Type: testutils.SUDTTypeScript(nil)}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: first}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: second}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: first}).
		Build()

	groups := newRunner(t, &infoscript.FinalVariant, 0).Groups(tx)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if !groups[0].Script.Equal(second) || len(groups[0].InputIndices) != 1 ||
		len(groups[0].OutputIndices) != 1 || groups[0].OutputIndices[0] != 2 {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if !groups[1].Script.Equal(first) || len(groups[1].InputIndices) != 0 ||
		len(groups[1].OutputIndices) != 2 || groups[1].OutputIndices[1] != 3 {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
}

func TestVerifyTransactionStopsAtFirstFailingGroup(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	owner := testutils.ScriptHash(lock)
	companionType := testutils.SUDTTypeScript(owner)
	validInfo := testutils.InfoTypeScript(testutils.ScriptHash(companionType))
	orphanInfo := testutils.InfoTypeScript(testutils.Hasher.Hash([]byte("orphan")).ByteSlice())

	tx := testutils.NewTransactionBuilder().
		AddInput(&externalapi.Cell{Capacity: 1000, Lock: lock}).
		AddOutput(&externalapi.Cell{Capacity: 142, Lock: lock, Type: companionType}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: validInfo, Data: testutils.USDCoinPayload()}).
		AddOutput(&externalapi.Cell{Capacity: 170, Lock: lock, Type: orphanInfo, Data: testutils.USDCoinPayload()}).
		Build()

	_, err := newRunner(t, &infoscript.FinalVariant, infoscript.DefaultMaxCycles).VerifyTransaction(tx)
	if err == nil || err.Error() != "ValidationFailure(8) at output_type_script(2)" {
		t.Fatalf("unexpected error %v", err)
	}
}
