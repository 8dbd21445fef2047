// package repository provides the entity store and its error types
package repository

import (
	"fmt"
)

// ErrNotFound is returned when no entity of the given kind has the ID
type ErrNotFound struct {
	Kind Kind
	ID   string
}

// Error implements the error interface
func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}
