package memutils

import (
	"math"
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer
}

func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// CheckAddress verifies that address is nonzero and a multiple of alignment. alignment must be
// a power of two.
func CheckAddress(address uintptr, alignment uintptr) error {
	if address == 0 {
		return ErrNullAddress
	}
	if address&(alignment-1) != 0 {
		return cerrors.Wrapf(ErrMisaligned, "address %#x, alignment %d", address, alignment)
	}
	return nil
}

// CheckBounds verifies that 0 <= index < length
func CheckBounds(index, length int) error {
	if index < 0 || index >= length {
		return cerrors.Wrapf(ErrOutOfBounds, "index %d, length %d", index, length)
	}
	return nil
}

// MulUintptr returns a*b and whether the product fit in a uintptr
func MulUintptr(a, b uintptr) (uintptr, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxUint64>>(64-bits.UintSize) {
		return 0, false
	}
	return uintptr(lo), true
}

// AddUintptr returns a+b and whether the sum fit in a uintptr
func AddUintptr(a, b uintptr) (uintptr, bool) {
	sum := a + b
	return sum, sum >= a
}

// OffsetAddress computes base + index*stride, reporting ErrOverflow rather than wrapping
func OffsetAddress(base uintptr, index int, stride uintptr) (uintptr, error) {
	if index < 0 {
		return 0, cerrors.Wrapf(ErrOutOfBounds, "negative index %d", index)
	}
	delta, ok := MulUintptr(uintptr(index), stride)
	if !ok {
		return 0, cerrors.Wrapf(ErrOverflow, "%d * %d", index, stride)
	}
	address, ok := AddUintptr(base, delta)
	if !ok {
		return 0, cerrors.Wrapf(ErrOverflow, "%#x + %#x", base, delta)
	}
	return address, nil
}

func AlignUp(value uintptr, alignment uintptr) uintptr {
	return (value + alignment - 1) &^ (alignment - 1)
}

func AlignDown(value uintptr, alignment uintptr) uintptr {
	return value &^ (alignment - 1)
}
