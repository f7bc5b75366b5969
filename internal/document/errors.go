package document

import "errors"

var (
	// ErrUnknownKind is returned for a kind that does not exist.
	ErrUnknownKind = errors.New("unknown document kind")

	// ErrContextFormat is returned when the context reference cannot be read.
	ErrContextFormat = errors.New("failed to format context")
)
