package memory

import "unsafe"

//go:generate mockgen -destination=mocks/bus.go -package=mock_memory github.com/vkngwrapper/volmem/memory Bus

// Bus performs volatile accesses on behalf of the descriptors in package vol. Every method
// call must result in exactly one access of exactly the named width at exactly the provided
// address: implementations may not split, merge, cache, or elide accesses, since device
// registers frequently have side effects on read or write.
//
// Bus implementations do not validate addresses. Descriptors are built on the caller's promise
// that an address is valid for the bus it is paired with.
type Bus interface {
	Load8(address uintptr) uint8
	Load16(address uintptr) uint16
	Load32(address uintptr) uint32
	Load64(address uintptr) uint64

	Store8(address uintptr, value uint8)
	Store16(address uintptr, value uint16)
	Store32(address uintptr, value uint32)
	Store64(address uintptr, value uint64)
}

// Pointered is implemented by buses that can translate a bus address into a pointer in this
// process's address space. It backs the raw-pointer escape hatches on vol descriptors.
type Pointered interface {
	Pointer(address uintptr) unsafe.Pointer
}
