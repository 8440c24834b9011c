package bitarray

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes a malformed
	// argument: a negative length, a bit offset outside [0,7], or a
	// malformed range. The container is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a read addresses a bit beyond the
	// logical size or a byte beyond the backing buffer.
	ErrOutOfRange = errors.New("out of range")
)
