package book

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when caller-supplied book data is missing a
	// required field or carries an invalid value.
	ErrValidation = errors.New("invalid book data")

	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidCollection is returned when a collection breaks the id
	// invariant (ids must be positive and unique).
	ErrInvalidCollection = errors.New("invalid book collection")
)

// invalid wraps the field errors produced by validation so that callers can
// match ErrValidation and still reach the details with errors.As.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}
