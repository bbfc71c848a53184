package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no planet exists with the given id
	ErrNotFound = errors.New("planet not found")

	// ErrNameRequired is returned when a create request carries no name
	ErrNameRequired = errors.New("name is required")

	// ErrDuplicateName is returned when a planet with the name already exists
	ErrDuplicateName = errors.New("planet with this name already exists")
)

// InUseError is returned when a delete is refused because favorites still
// reference the row
type InUseError struct {
	Count int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("planet is referenced by %d favorite(s)", e.Count)
}
