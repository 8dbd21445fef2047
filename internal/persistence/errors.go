package persistence

import "fmt"

// FailureKind classifies a failed load or save
type FailureKind int

const (
	// ParseFailure means the document exists but cannot be decoded
	ParseFailure FailureKind = iota + 1
	// IoFailure means the document could not be read or written
	IoFailure
)

// String implements fmt.Stringer
func (k FailureKind) String() string {
	switch k {
	case ParseFailure:
		return "parse failure"
	case IoFailure:
		return "io failure"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Error reports a persistence failure. It never means the in-memory state
// was changed.
type Error struct {
	Kind FailureKind
	Path string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}
