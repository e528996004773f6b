// errors.go: the failure taxonomy surfaced by terminal operations
//
// Operator construction never fails; all failures surface when a terminal
// operation (or an explicit pull) reaches the offending element. Each class
// below is a distinct type so callers can dispatch with errors.As:
//
//   - NotFoundError            strict lookups with no match and no default
//   - AmbiguousMatchError      Single/SingleOrDefault matching >1 element
//   - UnsupportedOperationError Reset on a non-resettable sequence,
//     unrecognized Cast target
//   - CastError                a Cast target that exists but cannot
//     represent the element
//   - ActionError              one per-element action failure, tagged with
//     its zero-based index and the failing action
//   - AggregateError           every ActionError collected by ForAll or
//     AssertAll; no individual failure is ever dropped

package enumerable

import (
	"fmt"
	"strings"
)

// NotFoundError reports a strict lookup (First, Last, Single, ElementAt)
// that matched nothing and had no default to fall back on.
type NotFoundError struct {
	Op string
}

func (e *NotFoundError) Error() string {
	return e.Op + ": element not found"
}

// AmbiguousMatchError reports a Single lookup that matched more than one
// element. It is raised even when a default was supplied: the default
// answers "no match", not "too many".
type AmbiguousMatchError struct {
	Op string
}

func (e *AmbiguousMatchError) Error() string {
	return e.Op + ": sequence contains more than one matching element"
}

// UnsupportedOperationError reports a capability the concrete sequence or
// operator does not have.
type UnsupportedOperationError struct {
	Op     string
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Reason == "" {
		return e.Op + ": unsupported operation"
	}
	return e.Op + ": " + e.Reason
}

// CastError reports an element a recognized cast target could not represent
// (for example a string that is not valid JSON cast to "object").
type CastError struct {
	Type  string
	Value Value
	Cause error
}

func (e *CastError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cast to %q failed for %s: %v", e.Type, e.Value, e.Cause)
	}
	return fmt.Sprintf("cast to %q failed for %s", e.Type, e.Value)
}

func (e *CastError) Unwrap() error { return e.Cause }

// ActionError wraps one per-element action failure. Index is the zero-based
// position of the element whose action failed; Action is the failing
// function reference.
type ActionError struct {
	Index  int
	Action any
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action failed at index %d: %v", e.Index, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// AggregateError bundles every ActionError collected over a full traversal.
// The order of Errors follows element order.
type AggregateError struct {
	Errors []*ActionError
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d action(s) failed", len(e.Errors))
	for _, ae := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(ae.Error())
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is/errors.As.
func (e *AggregateError) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, ae := range e.Errors {
		out[i] = ae
	}
	return out
}
