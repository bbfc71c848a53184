package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no character exists with the given id
	ErrNotFound = errors.New("person not found")

	// ErrNameRequired is returned when a create request carries no name
	ErrNameRequired = errors.New("name is required")

	// ErrDuplicateName is returned when a character with the name already exists
	ErrDuplicateName = errors.New("person with this name already exists")
)

// InUseError is returned when a delete is refused because favorites still
// reference the row. Count is the number of referencing favorites.
type InUseError struct {
	Count int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("person is referenced by %d favorite(s)", e.Count)
}
