package vol

import (
	"fmt"
	"unsafe"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memutils"
)

// Address is a single volatile location holding a T, accessed through a memory.Bus. R and W are
// the read and write capabilities.
//
// Address is a descriptor: copying it copies the description, never the memory, and two Address
// values are == when they name the same location on the same bus.
type Address[T Word, R, W Permission] struct {
	bus     memory.Bus
	address uintptr
}

// New creates an Address. This is the trusted step: the caller promises that address is a valid
// location for a T on bus, that it stays valid for as long as the Address is used, and that reads
// and writes are permitted as R and W claim. A null or misaligned address panics when built with
// debug_volmem and is undefined behavior otherwise.
func New[T Word, R, W Permission](bus memory.Bus, address uintptr) Address[T, R, W] {
	memutils.DebugCheckAddress(address, sizeOf[T]())
	return Address[T, R, W]{bus: bus, address: address}
}

// NewReadOnly creates an Address that can be read but not written. See New.
func NewReadOnly[T Word](bus memory.Bus, address uintptr) Address[T, Safe, No] {
	return New[T, Safe, No](bus, address)
}

// NewWriteOnly creates an Address that can be written but not read. See New.
func NewWriteOnly[T Word](bus memory.Bus, address uintptr) Address[T, No, Safe] {
	return New[T, No, Safe](bus, address)
}

// NewReadWrite creates an Address that can be read and written. See New.
func NewReadWrite[T Word](bus memory.Bus, address uintptr) Address[T, Safe, Safe] {
	return New[T, Safe, Safe](bus, address)
}

// Uintptr returns the numeric address
func (a Address[T, R, W]) Uintptr() uintptr { return a.address }

// Bus returns the bus accesses are made through
func (a Address[T, R, W]) Bus() memory.Bus { return a.bus }

// Pointer returns a as a pointer in this process's address space, or nil when the bus cannot
// translate addresses (see memory.Pointered). Accesses made through the pointer are ordinary Go
// memory accesses, which the compiler may reorder, merge or drop.
func (a Address[T, R, W]) Pointer() unsafe.Pointer {
	pointered, ok := a.bus.(memory.Pointered)
	if !ok {
		return nil
	}
	return pointered.Pointer(a.address)
}

// Add returns the Address count elements after a. The result is not checked; the caller promises
// it is a valid Address under the same terms as New.
func (a Address[T, R, W]) Add(count uintptr) Address[T, R, W] {
	return Address[T, R, W]{bus: a.bus, address: a.address + count*sizeOf[T]()}
}

// Sub returns the Address count elements before a. The result is not checked.
func (a Address[T, R, W]) Sub(count uintptr) Address[T, R, W] {
	return Address[T, R, W]{bus: a.bus, address: a.address - count*sizeOf[T]()}
}

// Offset returns the Address count elements away from a, in either direction. The result is not
// checked.
func (a Address[T, R, W]) Offset(count int) Address[T, R, W] {
	return Address[T, R, W]{bus: a.bus, address: a.address + uintptr(count)*sizeOf[T]()}
}

// Cast reinterprets a as holding a Z. The caller promises the location is valid for a Z.
func Cast[Z Word, T Word, R, W Permission](a Address[T, R, W]) Address[Z, R, W] {
	memutils.DebugCheckAddress(a.address, sizeOf[Z]())
	return Address[Z, R, W]{bus: a.bus, address: a.address}
}

// ChangePermissions returns a with its capabilities replaced. The caller promises the new
// capabilities are accurate.
func ChangePermissions[NewR, NewW Permission, T Word, R, W Permission](a Address[T, R, W]) Address[T, NewR, NewW] {
	return Address[T, NewR, NewW]{bus: a.bus, address: a.address}
}

// String renders the numeric address alone
func (a Address[T, R, W]) String() string {
	return fmt.Sprintf("%#x", a.address)
}

// GoString renders the address with its element type and capabilities, for %#v
func (a Address[T, R, W]) GoString() string {
	return fmt.Sprintf("vol.Address[%s](%#x)", typeParams[T, R, W](), a.address)
}

// Span returns the first byte covered by a and the number of bytes covered
func (a Address[T, R, W]) Span() (uintptr, uintptr) {
	return a.address, sizeOf[T]()
}

// DescribeJSON populates a json object with the address, element type and capabilities
func (a Address[T, R, W]) DescribeJSON(json *jwriter.ObjectState) {
	describeCommon[T, R, W](json, "Address", a.address)
}

func typeParams[T Word, R, W Permission]() string {
	var elem T
	var read R
	var write W
	return fmt.Sprintf("%T, %s, %s", elem, permissionName(read), permissionName(write))
}

func permissionName(p any) string {
	switch p.(type) {
	case Safe:
		return "Safe"
	case Unsafe:
		return "Unsafe"
	default:
		return "No"
	}
}

func describeCommon[T Word, R, W Permission](json *jwriter.ObjectState, kind string, address uintptr) {
	var elem T
	var read R
	var write W
	json.Name("Kind").String(kind)
	json.Name("Type").String(fmt.Sprintf("%T", elem))
	json.Name("Size").Int(int(sizeOf[T]()))
	json.Name("Read").String(permissionName(read))
	json.Name("Write").String(permissionName(write))
	json.Name("Address").String(fmt.Sprintf("%#x", address))
}
