package domain

import "errors"

var (
	// ErrNotFound is returned when no matching favorite exists
	ErrNotFound = errors.New("favorite not found")

	// ErrAlreadyFavorited is returned when the (user, type, target) triple
	// already exists
	ErrAlreadyFavorited = errors.New("already in favorites")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTargetNotFound is returned when the referenced character or planet
	// does not exist at creation time
	ErrTargetNotFound = errors.New("favorite target not found")

	// ErrInvalidTargetType is returned for a type tag outside the closed set
	ErrInvalidTargetType = errors.New("invalid favorite type")
)
