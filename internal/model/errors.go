package model

import "fmt"

// ErrorKind classifies a rejected mutating operation
type ErrorKind int

const (
	InvalidDuration ErrorKind = iota + 1
	InvalidTimeOfDay
	InvalidDateFormat
	EndBeforeStart
	EmptyTitle
	InvalidRepeat
)

// String implements fmt.Stringer
func (k ErrorKind) String() string {
	switch k {
	case InvalidDuration:
		return "invalid duration"
	case InvalidTimeOfDay:
		return "invalid time of day"
	case InvalidDateFormat:
		return "invalid date format"
	case EndBeforeStart:
		return "end before start"
	case EmptyTitle:
		return "empty title"
	case InvalidRepeat:
		return "invalid repeat policy"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError is returned when user input cannot produce an entity.
// No entity is constructed when one is returned.
type ValidationError struct {
	Kind   ErrorKind
	Reason string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Is matches any ValidationError of the same kind
func (e ValidationError) Is(target error) bool {
	t, ok := target.(ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrInvalidDuration   = ValidationError{Kind: InvalidDuration}
	ErrInvalidTimeOfDay  = ValidationError{Kind: InvalidTimeOfDay}
	ErrInvalidDateFormat = ValidationError{Kind: InvalidDateFormat}
	ErrEndBeforeStart    = ValidationError{Kind: EndBeforeStart}
	ErrEmptyTitle        = ValidationError{Kind: EmptyTitle}
	ErrInvalidRepeat     = ValidationError{Kind: InvalidRepeat}
)

func invalid(kind ErrorKind, format string, args ...any) error {
	return ValidationError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
