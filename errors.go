package implicant

import "fmt"

// MalformedInputError reports a problem with the caller-supplied formula
// or DIMACS text that is not a bug in the solver: an unparsable token, a
// zero literal inside a clause, or a problem-line/clause-count mismatch.
// A zero-clause input is not an error (it is SAT by convention).
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// InternalInvariantViolationError reports a condition that should be
// impossible if the solver is implemented correctly: a "unit" clause with
// zero unassigned literals, a missing predecessor node during conflict
// analysis, or a negative backjump target. These are never recovered from.
type InternalInvariantViolationError struct {
	Reason string
}

func (e *InternalInvariantViolationError) Error() string {
	return fmt.Sprintf("internal invariant violation: %s", e.Reason)
}

// UserAbortError is returned only by the External decision heuristic, when
// the caller-supplied chooser names a variable that is not a candidate.
type UserAbortError struct {
	VariableName string
}

func (e *UserAbortError) Error() string {
	return fmt.Sprintf("user abort: unrecognized variable %q", e.VariableName)
}
