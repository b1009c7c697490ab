package script

import "errors"

var (
	// ErrUnknownCommand indicates a command name the runner does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrSyntax indicates malformed command arguments.
	ErrSyntax = errors.New("syntax error")

	// ErrPosition indicates a position outside the buffer.
	ErrPosition = errors.New("position out of range")

	// ErrUnknownMark indicates an undo-to or redo-to naming no mark.
	ErrUnknownMark = errors.New("unknown mark")
)
