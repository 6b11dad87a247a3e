package memory

import (
	"unsafe"

	"github.com/vkngwrapper/volmem/memory/internal/volatile"
)

type nativeBus struct{}

// Native is a Bus that treats addresses as pointers into the current address space. It is
// the bus to use on bare metal, under TinyGo, or for memory the process has already mapped.
var Native Bus = nativeBus{}

func (nativeBus) Load8(address uintptr) uint8 {
	return volatile.Load8(unsafe.Pointer(address))
}

func (nativeBus) Load16(address uintptr) uint16 {
	return volatile.Load16(unsafe.Pointer(address))
}

func (nativeBus) Load32(address uintptr) uint32 {
	return volatile.Load32(unsafe.Pointer(address))
}

func (nativeBus) Load64(address uintptr) uint64 {
	return volatile.Load64(unsafe.Pointer(address))
}

func (nativeBus) Store8(address uintptr, value uint8) {
	volatile.Store8(unsafe.Pointer(address), value)
}

func (nativeBus) Store16(address uintptr, value uint16) {
	volatile.Store16(unsafe.Pointer(address), value)
}

func (nativeBus) Store32(address uintptr, value uint32) {
	volatile.Store32(unsafe.Pointer(address), value)
}

func (nativeBus) Store64(address uintptr, value uint64) {
	volatile.Store64(unsafe.Pointer(address), value)
}

func (nativeBus) Pointer(address uintptr) unsafe.Pointer {
	return unsafe.Pointer(address)
}
