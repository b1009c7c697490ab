package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrEmptyName indicates a buffer was created without a name.
	ErrEmptyName = errors.New("empty buffer name")

	// ErrBufferExists indicates the name is taken by another buffer.
	ErrBufferExists = errors.New("buffer already exists")

	// ErrBufferNotFound indicates no buffer has the given name.
	ErrBufferNotFound = errors.New("buffer not found")
)
