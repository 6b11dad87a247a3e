package vol

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memory"
)

// Block is a fixed run of volatile locations: Len elements of T, Stride bytes apart. Its shape is
// fixed when it is built and never changes, which is what lets Get, Index and Iter hand out
// Addresses without any further trust.
type Block[T Word, R, W Permission] struct {
	span[T, R, W]
}

// NewBlock creates a Block of length tightly packed elements starting at base. This is the
// trusted step: the caller promises every element is a valid location under the same terms as
// New. It panics if length is negative or the block would run past the end of the address space.
func NewBlock[T Word, R, W Permission](bus memory.Bus, base uintptr, length int) Block[T, R, W] {
	return NewStridedBlock[T, R, W](bus, base, length, sizeOf[T]())
}

// NewStridedBlock creates a Block whose elements are stride bytes apart rather than packed, as
// for a series of identical register banks. See NewBlock.
func NewStridedBlock[T Word, R, W Permission](bus memory.Bus, base uintptr, length int, stride uintptr) Block[T, R, W] {
	return Block[T, R, W]{
		span: newSpan(Address[T, R, W]{bus: bus, address: base}, length, stride),
	}
}

// AsBlock widens a to a packed Block of length elements starting at a. The caller promises the
// length-1 locations after a are valid as well.
func AsBlock[T Word, R, W Permission](a Address[T, R, W], length int) Block[T, R, W] {
	return Block[T, R, W]{span: newSpan(a, length, sizeOf[T]())}
}

// Base returns the Address of the first element without a bounds check, even for an empty Block
func (b Block[T, R, W]) Base() Address[T, R, W] {
	return b.base
}

// AsRegion returns a Region over the same elements. The Region's length is ordinary runtime
// state, so code holding it can no longer rely on the Block's fixed shape.
func (b Block[T, R, W]) AsRegion() Region[T, R, W] {
	return Region[T, R, W]{span: b.span}
}

// String renders the base address alone
func (b Block[T, R, W]) String() string {
	return b.base.String()
}

// GoString renders the Block with its element type, capabilities and shape, for %#v
func (b Block[T, R, W]) GoString() string {
	return b.goString("Block")
}

// DescribeJSON populates a json object with the Block's address, element type, capabilities and shape
func (b Block[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "Block", b.base.address)
	json.Name("Len").Int(b.length)
	json.Name("Stride").Int(int(b.stride))
}
