package vol

import (
	"unsafe"

	"github.com/vkngwrapper/volmem/memory"
	"github.com/vkngwrapper/volmem/memutils"
)

func sizeOf[T Word]() uintptr {
	var value T
	return unsafe.Sizeof(value)
}

func load[T Word](bus memory.Bus, address uintptr) T {
	memutils.DebugCheckAddress(address, sizeOf[T]())

	switch sizeOf[T]() {
	case 1:
		return T(bus.Load8(address))
	case 2:
		return T(bus.Load16(address))
	case 4:
		return T(bus.Load32(address))
	default:
		return T(bus.Load64(address))
	}
}

func store[T Word](bus memory.Bus, address uintptr, value T) {
	memutils.DebugCheckAddress(address, sizeOf[T]())

	switch sizeOf[T]() {
	case 1:
		bus.Store8(address, uint8(value))
	case 2:
		bus.Store16(address, uint16(value))
	case 4:
		bus.Store32(address, uint32(value))
	default:
		bus.Store64(address, uint64(value))
	}
}

// Read performs a volatile load from an address with Safe read capability
func Read[T Word, W Permission](a Address[T, Safe, W]) T {
	return load[T](a.bus, a.address)
}

// ReadUnsafe performs a volatile load from an address with Unsafe read capability. The caller is
// responsible for whatever conditions made the capability Unsafe.
func ReadUnsafe[T Word, W Permission](a Address[T, Unsafe, W]) T {
	return load[T](a.bus, a.address)
}

// Write performs a volatile store to an address with Safe write capability
func Write[T Word, R Permission](a Address[T, R, Safe], value T) {
	store[T](a.bus, a.address, value)
}

// WriteUnsafe performs a volatile store to an address with Unsafe write capability. The caller is
// responsible for whatever conditions made the capability Unsafe.
func WriteUnsafe[T Word, R Permission](a Address[T, R, Unsafe], value T) {
	store[T](a.bus, a.address, value)
}

// Apply reads the value at a, passes it to op for modification, and writes the result back. That
// is one volatile load followed by one volatile store; the pair is not atomic.
func Apply[T Word](a Address[T, Safe, Safe], op func(value *T)) {
	value := load[T](a.bus, a.address)
	op(&value)
	store[T](a.bus, a.address, value)
}

// ApplyUnsafe is Apply for addresses where either capability is Unsafe
func ApplyUnsafe[T Word, R, W Permitted](a Address[T, R, W], op func(value *T)) {
	value := load[T](a.bus, a.address)
	op(&value)
	store[T](a.bus, a.address, value)
}
