package sanity

import "errors"

// Classification sentinels for check failures. Every error returned by this
// package matches exactly one of them under errors.Is; custom message
// templates change the wording but never the classification.
var (
	// ErrInvalidConstraint is returned when the constraint specification
	// itself is ill-formed (no bound given, conflicting length options, an
	// empty type set, an empty argument name). Always a caller bug, never
	// data-dependent.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrTypeMismatch is returned when a value (or an element) is not an
	// instance of any admissible type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRangeViolation is returned when a numeric value falls outside the
	// admissible interval, or inside it under complement mode.
	ErrRangeViolation = errors.New("value out of range")

	// ErrValueMismatch is returned when a value does not equal an admissible
	// target, or equals a prohibited one under complement mode.
	ErrValueMismatch = errors.New("inadmissible value")

	// ErrNilElement is returned when a collection contains a nil element
	// where nil elements are disallowed.
	ErrNilElement = errors.New("nil element")

	// ErrLengthViolation is returned when a collection's length fails the
	// exact, minimum, or maximum length constraint.
	ErrLengthViolation = errors.New("invalid length")

	// ErrElementCheckFailed is returned when a caller-supplied element check
	// rejects an element; the original failure is carried as the cause.
	ErrElementCheckFailed = errors.New("element check failed")
)

// CheckError describes a single failed check. Kind is one of the sentinel
// errors above and is reachable through errors.Is; Cause is set only when a
// custom element check failed and carries the rejection it reported.
type CheckError struct {
	Arg     string
	Kind    error
	Message string
	Cause   error
}

func (e *CheckError) Error() string {
	return e.Message
}

func (e *CheckError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newCheckError(kind error, arg, message string) *CheckError {
	return &CheckError{Arg: arg, Kind: kind, Message: message}
}
