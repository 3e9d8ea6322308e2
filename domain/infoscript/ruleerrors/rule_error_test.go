package ruleerrors

import (
	"testing"

	"github.com/pkg/errors"
)

type testOutPoint string

func (op testOutPoint) String() string {
	return string(op)
}

func TestWrappedRuleErrorKeepsIdentity(t *testing.T) {
	wrapped := errors.Wrapf(ErrOwnerLockScriptNotMatch, "owner lock hash %x is not among the inputs", []byte{1, 2})
	if !errors.Is(wrapped, ErrOwnerLockScriptNotMatch) {
		t.Fatalf("TestWrappedRuleErrorKeepsIdentity: wrapped error lost its sentinel: %s", wrapped)
	}
	if errors.Is(wrapped, ErrOwnerLockScriptNotExist) {
		t.Fatalf("TestWrappedRuleErrorKeepsIdentity: wrapped error matched the wrong sentinel")
	}
	if KindOf(wrapped) != KindOwnerLockScriptNotMatch {
		t.Fatalf("TestWrappedRuleErrorKeepsIdentity: Expected %s, found: %s",
			KindOwnerLockScriptNotMatch, KindOf(wrapped))
	}
	expected := "owner lock hash 0102 is not among the inputs: ErrOwnerLockScriptNotMatch"
	if wrapped.Error() != expected {
		t.Fatalf("TestWrappedRuleErrorKeepsIdentity: Expected %s. found: %s", expected, wrapped.Error())
	}
}

func TestNewErrCellNotFound(t *testing.T) {
	outer := NewErrCellNotFound(testOutPoint("ff:5"))
	expectedOuterErr := "ErrItemMissing: cell ff:5 is not live"
	inner := &ErrCellNotFound{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrCellNotFound: Outer should contain ErrCellNotFound in it")
	}
	if inner.OutPoint != "ff:5" {
		t.Fatalf("TestNewErrCellNotFound: Expected ff:5. found: %s", inner.OutPoint)
	}
	if !errors.Is(outer, ErrItemMissing) {
		t.Fatalf("TestNewErrCellNotFound: Outer should match ErrItemMissing")
	}
	if errors.Is(outer, ErrEncoding) {
		t.Fatalf("TestNewErrCellNotFound: Outer matched ErrEncoding")
	}
	if KindOf(outer) != KindItemMissing {
		t.Fatalf("TestNewErrCellNotFound: Expected kind ItemMissing, found: %s", KindOf(outer))
	}
	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrCellNotFound: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestKindOfForeignError(t *testing.T) {
	if kind := KindOf(errors.New("disk on fire")); kind != KindUnknown {
		t.Fatalf("TestKindOfForeignError: Expected Unknown, found: %s", kind)
	}
	if kind := KindOf(nil); kind != KindUnknown {
		t.Fatalf("TestKindOfForeignError: Expected Unknown for nil, found: %s", kind)
	}
}

func TestExitCodeTable(t *testing.T) {
	table := NewExitCodeTable(ExitCodeTable{
		KindInfoTypeArgsNotMatch:    5,
		KindOwnerLockScriptNotMatch: 6,
	})
	tests := []struct {
		err      error
		code     int8
		reported bool
	}{
		{nil, 0, false},
		{errors.Wrap(ErrInfoTypeArgsNotMatch, "no companion"), 5, true},
		{ErrOwnerLockScriptNotMatch, 6, true},
		{errors.WithStack(ErrIndexOutOfBound), ExitCodeIndexOutOfBound, true},
		{NewErrCellNotFound(testOutPoint("aa:0")), ExitCodeItemMissing, true},
		{ErrWrongDataStruct, 0, false},
		{ErrExceededMaxCycles, 0, false},
		{errors.New("foreign"), 0, false},
	}
	for i, test := range tests {
		code, reported := table.ExitCode(test.err)
		if code != test.code || reported != test.reported {
			t.Errorf("TestExitCodeTable #%d: got (%d, %t), want (%d, %t)", i, code, reported, test.code, test.reported)
		}
	}
}
