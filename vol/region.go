package vol

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memutils"
)

// Region is a run of volatile locations whose length is only known at runtime, such as a window
// sized by a device's configuration space. The length is validated once when the Region is built
// and never changes afterward.
type Region[T Word, R, W Permission] struct {
	span[T, R, W]
}

// NewRegion creates a Region of length packed elements starting at base. This is the trusted
// step: the caller promises every element is a valid location under the same terms as New. It
// panics if length is negative or the region would run past the end of the address space.
func NewRegion[T Word, R, W Permission](base Address[T, R, W], length int) Region[T, R, W] {
	return Region[T, R, W]{span: newSpan(base, length, sizeOf[T]())}
}

// NewStridedRegion creates a Region whose elements are stride bytes apart. See NewRegion.
func NewStridedRegion[T Word, R, W Permission](base Address[T, R, W], length int, stride uintptr) Region[T, R, W] {
	return Region[T, R, W]{span: newSpan(base, length, stride)}
}

// SubRegion returns the elements in [start, end). It panics unless 0 <= start <= end <= Len().
func (r Region[T, R, W]) SubRegion(start, end int) Region[T, R, W] {
	if start < 0 || start > end || end > r.length {
		panic(errors.Wrapf(memutils.ErrOutOfBounds, "vol: sub-region [%d, %d) of length %d", start, end, r.length))
	}

	out := r.span
	out.base.address += uintptr(start) * r.stride
	out.length = end - start
	return Region[T, R, W]{span: out}
}

// IterRange returns an iterator over the elements in [start, end). See SubRegion.
func (r Region[T, R, W]) IterRange(start, end int) Iter[T, R, W] {
	return r.SubRegion(start, end).Iter()
}

// String renders the base address alone
func (r Region[T, R, W]) String() string {
	return r.base.String()
}

// GoString renders the Region with its element type, capabilities and shape, for %#v
func (r Region[T, R, W]) GoString() string {
	return r.goString("Region")
}

// DescribeJSON populates a json object with the Region's address, element type, capabilities and shape
func (r Region[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "Region", r.base.address)
	json.Name("Len").Int(r.length)
	json.Name("Stride").Int(int(r.stride))
}

func checkSliceLength(regionLength, sliceLength int) {
	if regionLength != sliceLength {
		panic(errors.Newf("vol: region has %d elements but slice has %d", regionLength, sliceLength))
	}
}

// ReadSlice fills dst with one volatile load per element of r, in ascending order. It panics if
// len(dst) != r.Len().
func ReadSlice[T Word, W Permission](r Region[T, Safe, W], dst []T) {
	checkSliceLength(r.length, len(dst))
	for i := range dst {
		dst[i] = load[T](r.base.bus, r.at(i).address)
	}
}

// ReadSliceUnsafe is ReadSlice for a Region with Unsafe read capability
func ReadSliceUnsafe[T Word, W Permission](r Region[T, Unsafe, W], dst []T) {
	checkSliceLength(r.length, len(dst))
	for i := range dst {
		dst[i] = load[T](r.base.bus, r.at(i).address)
	}
}

// WriteSlice stores src into r with one volatile store per element, in ascending order. It panics
// if len(src) != r.Len().
func WriteSlice[T Word, R Permission](r Region[T, R, Safe], src []T) {
	checkSliceLength(r.length, len(src))
	for i, value := range src {
		store[T](r.base.bus, r.at(i).address, value)
	}
}

// WriteSliceUnsafe is WriteSlice for a Region with Unsafe write capability
func WriteSliceUnsafe[T Word, R Permission](r Region[T, R, Unsafe], src []T) {
	checkSliceLength(r.length, len(src))
	for i, value := range src {
		store[T](r.base.bus, r.at(i).address, value)
	}
}
