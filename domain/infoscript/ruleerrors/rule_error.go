package ruleerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a RuleError independently of the exit code a particular
// script variant reports it with.
type Kind uint8

// The kinds of failures an info script verification can end with.
const (
	KindUnknown Kind = iota

	// Host level failures, raised by the execution context itself.
	KindIndexOutOfBound
	KindItemMissing
	KindLengthNotEnough
	KindEncoding

	// Failures raised by the script.
	KindOwnerLockScriptNotExist
	KindInfoTypeArgsNotMatch
	KindOwnerLockScriptNotMatch
	KindWrongDataStruct

	// KindExceededMaxCycles is raised by the host when the compute budget is
	// exhausted. It has no exit code: the host aborts the script instead.
	KindExceededMaxCycles
)

var kindNames = map[Kind]string{
	KindUnknown:                 "Unknown",
	KindIndexOutOfBound:         "IndexOutOfBound",
	KindItemMissing:             "ItemMissing",
	KindLengthNotEnough:         "LengthNotEnough",
	KindEncoding:                "Encoding",
	KindOwnerLockScriptNotExist: "OwnerLockScriptNotExist",
	KindInfoTypeArgsNotMatch:    "InfoTypeArgsNotMatch",
	KindOwnerLockScriptNotMatch: "OwnerLockScriptNotMatch",
	KindWrongDataStruct:         "WrongDataStruct",
	KindExceededMaxCycles:       "ExceededMaxCycles",
}

func (kind Kind) String() string {
	name, ok := kindNames[kind]
	if !ok {
		return fmt.Sprintf("Kind(%d)", uint8(kind))
	}
	return name
}

// IsHostError returns whether errors of this kind originate in the execution
// context rather than in the script's own checks.
func (kind Kind) IsHostError() bool {
	return kind >= KindIndexOutOfBound && kind <= KindEncoding
}

// These constants are used to identify a specific RuleError.
var (
	// ErrIndexOutOfBound indicates a load past the last cell of a source.
	// Enumerations stop on it, anywhere else it fails the verification.
	ErrIndexOutOfBound = newRuleError("ErrIndexOutOfBound", KindIndexOutOfBound)

	// ErrItemMissing indicates a requested field is absent, e.g. an input
	// whose previous output could not be resolved.
	ErrItemMissing = newRuleError("ErrItemMissing", KindItemMissing)

	// ErrLengthNotEnough indicates a loaded value is shorter than required.
	ErrLengthNotEnough = newRuleError("ErrLengthNotEnough", KindLengthNotEnough)

	// ErrEncoding indicates a loaded value failed to decode.
	ErrEncoding = newRuleError("ErrEncoding", KindEncoding)

	// ErrOwnerLockScriptNotExist indicates no input is locked by the lock
	// hash given directly as the script args.
	ErrOwnerLockScriptNotExist = newRuleError("ErrOwnerLockScriptNotExist", KindOwnerLockScriptNotExist)

	// ErrInfoTypeArgsNotMatch indicates no output carries a type script
	// whose hash equals the script args.
	ErrInfoTypeArgsNotMatch = newRuleError("ErrInfoTypeArgsNotMatch", KindInfoTypeArgsNotMatch)

	// ErrOwnerLockScriptNotMatch indicates a companion cell was found but no
	// input is locked by the owner lock hash it declares.
	ErrOwnerLockScriptNotMatch = newRuleError("ErrOwnerLockScriptNotMatch", KindOwnerLockScriptNotMatch)

	// ErrWrongDataStruct indicates the info cell's data is not line
	// delimited token metadata.
	ErrWrongDataStruct = newRuleError("ErrWrongDataStruct", KindWrongDataStruct)

	// ErrExceededMaxCycles indicates the verification ran out of its cycle
	// budget.
	ErrExceededMaxCycles = newRuleError("ErrExceededMaxCycles", KindExceededMaxCycles)
)

// RuleError identifies a rule violation. It is used to indicate that
// verification of an info cell failed due to one of the validation rules or
// due to a failed access to the transaction. The caller can use errors.As to
// determine if a failure was specifically due to a rule violation.
type RuleError struct {
	message string
	kind    Kind
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is makes errors.Is match a RuleError against the sentinel of its kind, also
// when it carries an inner error.
func (e RuleError) Is(target error) bool {
	var ruleErr RuleError
	if !errors.As(target, &ruleErr) {
		return false
	}
	return e.kind == ruleErr.kind
}

// Kind returns the kind of this rule error.
func (e RuleError) Kind() Kind {
	return e.kind
}

func newRuleError(message string, kind Kind) RuleError {
	return RuleError{message: message, kind: kind, inner: nil}
}

// KindOf returns the kind of the RuleError inside err, or KindUnknown if err
// does not contain one.
func KindOf(err error) Kind {
	var ruleErr RuleError
	if !errors.As(err, &ruleErr) {
		return KindUnknown
	}
	return ruleErr.kind
}

// ErrCellNotFound indicates a cell looked up by outpoint does not exist in
// the cell set used to resolve inputs.
type ErrCellNotFound struct {
	OutPoint string
}

func (e ErrCellNotFound) Error() string {
	return fmt.Sprintf("cell %s is not live", e.OutPoint)
}

// NewErrCellNotFound creates a new ErrCellNotFound error wrapped in an
// ErrItemMissing RuleError
func NewErrCellNotFound(outPoint fmt.Stringer) error {
	return errors.WithStack(RuleError{
		message: ErrItemMissing.message,
		kind:    KindItemMissing,
		inner:   ErrCellNotFound{OutPoint: outPoint.String()},
	})
}
