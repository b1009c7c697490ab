package option

import (
	"errors"
	"fmt"
)

// Errors returned by option operations.
var (
	// ErrNotFound indicates no scope in the chain sets the option.
	ErrNotFound = errors.New("option not found")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidName indicates a malformed option name.
	ErrInvalidName = errors.New("invalid option name")
)

// TypeError represents a type mismatch when reading an option.
type TypeError struct {
	Name     string
	Expected string
	Actual   any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("option %s: expected %s, got %T", e.Name, e.Expected, e.Actual)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
