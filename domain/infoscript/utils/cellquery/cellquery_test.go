package cellquery

import (
	"testing"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/testutils"
)

func TestFindTypeHashSkipsUntypedCellsAndStopsAtFirstMatch(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	tokenType := testutils.SUDTTypeScript([]byte("owner"))
	tx := testutils.NewTransactionBuilder().
		AddOutput(&externalapi.Cell{Capacity: 61, Lock: lock}).
		AddOutput(&externalapi.Cell{Capacity: 142, Lock: lock, Type: tokenType}).
		AddOutput(&externalapi.Cell{Capacity: 142, Lock: lock, Type: tokenType}).
		Build()
	context := testutils.NewCountingContext(tx, testutils.InfoTypeScript(nil))

	index, err := FindTypeHash(context, externalapi.SourceOutput, func(typeHash *externalapi.DomainHash) bool {
		return typeHash.EqualBytes(testutils.ScriptHash(tokenType))
	})
	if err != nil {
		t.Fatalf("FindTypeHash: %+v", err)
	}
	if index != 1 {
		t.Fatalf("FindTypeHash returned %d, want 1", index)
	}
	if loads := context.Loads(); loads != 2 {
		t.Fatalf("FindTypeHash loaded %d cells, want 2", loads)
	}

	index, err = FindTypeHash(context, externalapi.SourceOutput, func(*externalapi.DomainHash) bool { return false })
	if err != nil {
		t.Fatalf("FindTypeHash: %+v", err)
	}
	if index != NotFound {
		t.Fatalf("FindTypeHash returned %d, want NotFound", index)
	}
}

func TestFindType(t *testing.T) {
	lock := testutils.AlwaysSuccessLock(nil)
	tokenType := testutils.SUDTTypeScript([]byte("owner"))
	tx := testutils.NewTransactionBuilder().
		AddOutput(&externalapi.Cell{Capacity: 61, Lock: lock}).
		AddOutput(&externalapi.Cell{Capacity: 142, Lock: lock, Type: tokenType}).
		Build()
	context := testutils.NewCountingContext(tx, testutils.InfoTypeScript(nil))

	index, typeScript, err := FindType(context, externalapi.SourceOutput, tokenType.Equal)
	if err != nil {
		t.Fatalf("FindType: %+v", err)
	}
	if index != 1 || !typeScript.Equal(tokenType) {
		t.Fatalf("FindType returned (%d, %s)", index, typeScript)
	}
}

func TestContainsLockHash(t *testing.T) {
	ownerLock := testutils.AlwaysSuccessLock([]byte("owner"))
	otherLock := testutils.AlwaysSuccessLock([]byte("other"))
	tx := testutils.NewTransactionBuilder().
		AddInput(&externalapi.Cell{Capacity: 100, Lock: otherLock}).
		AddInput(&externalapi.Cell{Capacity: 100, Lock: ownerLock}).
		AddInput(&externalapi.Cell{Capacity: 100, Lock: ownerLock}).
		Build()
	context := testutils.NewCountingContext(tx, testutils.InfoTypeScript(nil))

	tests := []struct {
		lockHash []byte
		want     bool
	}{
		{testutils.ScriptHash(ownerLock), true},
		{testutils.ScriptHash(otherLock), true},
		{testutils.ScriptHash(testutils.AlwaysSuccessLock(nil)), false},
		{testutils.ScriptHash(ownerLock)[:20], false},
		{nil, false},
	}
	for i, test := range tests {
		got, err := ContainsLockHash(context, externalapi.SourceInput, test.lockHash)
		if err != nil {
			t.Fatalf("test #%d: ContainsLockHash: %+v", i, err)
		}
		if got != test.want {
			t.Errorf("test #%d: ContainsLockHash returned %t, want %t", i, got, test.want)
		}
	}
}

func TestEnumerationPropagatesHostErrors(t *testing.T) {
	tx := testutils.NewTransactionBuilder().
		AddUnresolvedInput(externalapi.OutPoint{Index: 3}).
		Build()
	context := testutils.NewCountingContext(tx, testutils.InfoTypeScript(nil))

	_, err := ContainsLockHash(context, externalapi.SourceInput, []byte{1})
	if ruleerrors.KindOf(err) != ruleerrors.KindItemMissing {
		t.Fatalf("ContainsLockHash: expected ItemMissing, got %v", err)
	}
}
