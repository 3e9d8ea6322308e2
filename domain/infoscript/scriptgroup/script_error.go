package scriptgroup

import (
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
)

// FailureKind classifies a ScriptError.
type FailureKind uint8

const (
	// ValidationFailure is a script terminating with a non-zero exit code.
	ValidationFailure FailureKind = iota

	// ExceededMaximumCycles is a script running out of its cycle budget.
	ExceededMaximumCycles

	// UnmappedFailure is a script failing with an error its variant has no
	// exit code for.
	UnmappedFailure
)

// ScriptError attributes a verification failure to the type script group it
// happened in. The group is identified by the first cell carrying its
// script, inputs taking precedence, the way the node reports it.
type ScriptError struct {
	Kind   FailureKind
	Code   int8
	Source externalapi.Source
	Index  int
	inner  error
}

func (e *ScriptError) location() string {
	if e.Source == externalapi.SourceInput {
		return fmt.Sprintf("input_type_script(%d)", e.Index)
	}
	return fmt.Sprintf("output_type_script(%d)", e.Index)
}

// Error satisfies the error interface. It prints, for example,
// "ValidationFailure(5) at output_type_script(1)".
func (e *ScriptError) Error() string {
	switch e.Kind {
	case ValidationFailure:
		return fmt.Sprintf("ValidationFailure(%d) at %s", e.Code, e.location())
	case ExceededMaximumCycles:
		return fmt.Sprintf("ExceededMaximumCycles at %s", e.location())
	default:
		return fmt.Sprintf("Failure(%s) at %s", e.inner, e.location())
	}
}

// Unwrap returns the error the script failed with.
func (e *ScriptError) Unwrap() error {
	return e.inner
}
