package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

var (
	// ErrNullAddress is returned by CheckAddress when a descriptor would be built on address zero
	ErrNullAddress error = errors.New("address must be nonzero")
	// ErrMisaligned is returned by CheckAddress when an address is not aligned for its element type
	ErrMisaligned error = errors.New("address is not aligned for its element type")
	// ErrOutOfBounds is returned by CheckBounds when an index falls outside of a descriptor's length
	ErrOutOfBounds error = errors.New("index out of bounds")
	// ErrOverflow is returned when address arithmetic would wrap around the address space
	ErrOverflow error = errors.New("address arithmetic overflows uintptr")
)
