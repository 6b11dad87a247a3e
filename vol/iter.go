package vol

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/volmem/memutils"
)

// Iter walks forward over a sequence of Addresses. It is finite, never wraps, and is consumed by
// use: Next and Nth advance it. Copy it (or call Clone) to keep a position.
//
// Next and Nth consume from the front; NextBack and NthBack consume from the back. The iterator
// is exhausted when the two meet.
type Iter[T Word, R, W Permission] struct {
	base     Address[T, R, W]
	stride   uintptr
	position int
	length   int
}

func (it *Iter[T, R, W]) at(i int) Address[T, R, W] {
	memutils.DebugCheckBounds(i, it.length)
	return Address[T, R, W]{bus: it.base.bus, address: it.base.address + uintptr(i)*it.stride}
}

// Len returns the number of elements remaining
func (it *Iter[T, R, W]) Len() int {
	return it.length - it.position
}

// Clone returns an independent iterator at the same position
func (it *Iter[T, R, W]) Clone() Iter[T, R, W] {
	return *it
}

// Next yields the next Address, or false once the iterator is exhausted
func (it *Iter[T, R, W]) Next() (Address[T, R, W], bool) {
	if it.position >= it.length {
		return Address[T, R, W]{}, false
	}

	out := it.at(it.position)
	it.position++
	return out, true
}

// Nth skips n elements and yields the one after them. If n elements are not left to skip, the
// iterator is exhausted and Nth yields nothing; no address at or past the end is ever computed.
// Nth(0) is Next.
func (it *Iter[T, R, W]) Nth(n int) (Address[T, R, W], bool) {
	if n < 0 {
		panic(errors.Newf("vol: Nth(%d)", n))
	}

	remaining := it.length - it.position
	if n >= remaining {
		it.position = it.length
		return Address[T, R, W]{}, false
	}

	it.position += n
	return it.Next()
}

// Last exhausts the iterator and yields the final element, if any remained
func (it *Iter[T, R, W]) Last() (Address[T, R, W], bool) {
	if it.position >= it.length {
		return Address[T, R, W]{}, false
	}

	out := it.at(it.length - 1)
	it.position = it.length
	return out, true
}

// NextBack yields the last remaining Address and removes it from the iterator
func (it *Iter[T, R, W]) NextBack() (Address[T, R, W], bool) {
	if it.position >= it.length {
		return Address[T, R, W]{}, false
	}

	out := it.at(it.length - 1)
	it.length--
	return out, true
}

// NthBack skips n elements from the back and yields the one before them, exhausting the iterator
// if fewer than n+1 remain
func (it *Iter[T, R, W]) NthBack(n int) (Address[T, R, W], bool) {
	if n < 0 {
		panic(errors.Newf("vol: NthBack(%d)", n))
	}

	remaining := it.length - it.position
	if n >= remaining {
		it.length = it.position
		return Address[T, R, W]{}, false
	}

	it.length -= n
	return it.NextBack()
}

// All consumes the iterator, for use with range. It yields each Address with its index in the
// underlying sequence.
func (it *Iter[T, R, W]) All() func(yield func(int, Address[T, R, W]) bool) {
	return func(yield func(int, Address[T, R, W]) bool) {
		for it.position < it.length {
			index := it.position
			it.position++
			if !yield(index, it.at(index)) {
				return
			}
		}
	}
}
