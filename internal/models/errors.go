package models

import "errors"

var (
	// ErrValidation marks input the caller should not have sent.
	ErrValidation = errors.New("validation failed")
	// ErrCorruptFile marks a catalog file that does not match the binary layout.
	ErrCorruptFile = errors.New("corrupt catalog file")
	// ErrIO wraps underlying read/write failures of the catalog file.
	ErrIO = errors.New("catalog io failure")
	// ErrInvalidState is returned when a quiz answer arrives with no pending round.
	ErrInvalidState = errors.New("no quiz round awaiting an answer")
)
