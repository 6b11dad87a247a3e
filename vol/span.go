package vol

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memutils"
)

// span is the shape shared by Block and Region: length elements, stride bytes apart, starting at
// base. Constructors guarantee that base + (length-1)*stride does not overflow, so every in-range
// index has a well-defined address.
type span[T Word, R, W Permission] struct {
	base   Address[T, R, W]
	length int
	stride uintptr
}

func newSpan[T Word, R, W Permission](base Address[T, R, W], length int, stride uintptr) span[T, R, W] {
	if length < 0 {
		panic(errors.Newf("vol: negative length %d", length))
	}
	if stride == 0 {
		panic(errors.New("vol: stride must be nonzero"))
	}
	if length > 0 {
		_, err := memutils.OffsetAddress(base.address, length-1, stride)
		if err != nil {
			panic(errors.Wrapf(err, "vol: %d elements of stride %d at %#x", length, stride, base.address))
		}
	}
	memutils.DebugCheckAddress(base.address, sizeOf[T]())
	if memutils.DebugChecksEnabled && stride%sizeOf[T]() != 0 {
		panic(errors.Wrapf(memutils.ErrMisaligned, "vol: stride %d for %d-byte elements", stride, sizeOf[T]()))
	}

	return span[T, R, W]{base: base, length: length, stride: stride}
}

// Len returns the number of elements
func (s span[T, R, W]) Len() int { return s.length }

// Stride returns the distance in bytes between consecutive elements
func (s span[T, R, W]) Stride() uintptr { return s.stride }

// Uintptr returns the address of the first element
func (s span[T, R, W]) Uintptr() uintptr { return s.base.address }

// Bus returns the bus accesses are made through
func (s span[T, R, W]) Bus() memory.Bus { return s.base.bus }

// Span returns the first byte covered and the number of bytes from there to the end of the last
// element
func (s span[T, R, W]) Span() (uintptr, uintptr) {
	if s.length == 0 {
		return s.base.address, 0
	}
	return s.base.address, uintptr(s.length-1)*s.stride + sizeOf[T]()
}

// at skips bounds checks; i must be within [0, length)
func (s span[T, R, W]) at(i int) Address[T, R, W] {
	return Address[T, R, W]{bus: s.base.bus, address: s.base.address + uintptr(i)*s.stride}
}

// Get returns the Address of element i, or false if i is out of range
func (s span[T, R, W]) Get(i int) (Address[T, R, W], bool) {
	if i < 0 || i >= s.length {
		return Address[T, R, W]{}, false
	}
	return s.at(i), true
}

// Index returns the Address of element i and panics if i is out of range
func (s span[T, R, W]) Index(i int) Address[T, R, W] {
	if i < 0 || i >= s.length {
		panic(errors.Wrapf(memutils.ErrOutOfBounds, "vol: index %d, length %d", i, s.length))
	}
	return s.at(i)
}

// Iter returns an iterator over every element in order
func (s span[T, R, W]) Iter() Iter[T, R, W] {
	return Iter[T, R, W]{base: s.base, stride: s.stride, length: s.length}
}

// Pointer returns the first element as a pointer in this process's address space, or nil if the
// bus cannot translate addresses. See Address.Pointer.
func (s span[T, R, W]) Pointer() unsafe.Pointer {
	return s.base.Pointer()
}

// UnsafeSlice exposes the elements as an ordinary Go slice, for handing the memory to code that
// does not make volatile accesses. It returns nil unless the bus can translate addresses and the
// elements are packed (stride equals the element size). Accesses through the slice may be
// reordered, merged or dropped by the compiler.
func (s span[T, R, W]) UnsafeSlice() []T {
	if s.stride != sizeOf[T]() || s.length == 0 {
		return nil
	}
	pointer := s.Pointer()
	if pointer == nil {
		return nil
	}
	return unsafe.Slice((*T)(pointer), s.length)
}

func (s span[T, R, W]) goString(kind string) string {
	return fmt.Sprintf("vol.%s[%s](%#x, len: %d, stride: %d)", kind, typeParams[T, R, W](), s.base.address, s.length, s.stride)
}
