// Package volatile performs single loads and stores through raw pointers that the compiler
// may not elide, merge or reorder with other volatile accesses.
//
// 32- and 64-bit accesses use sync/atomic, which compiles to a single aligned load or store
// on every supported architecture. The gc toolchain has no 8- or 16-bit atomics, so narrow
// accesses go through functions that are never inlined; the call boundary keeps the access
// from being cached or combined with its neighbours.
package volatile

import (
	"sync/atomic"
	"unsafe"
)

//go:noinline
func Load8(p unsafe.Pointer) uint8 {
	return *(*uint8)(p)
}

//go:noinline
func Load16(p unsafe.Pointer) uint16 {
	return *(*uint16)(p)
}

func Load32(p unsafe.Pointer) uint32 {
	return atomic.LoadUint32((*uint32)(p))
}

func Load64(p unsafe.Pointer) uint64 {
	return atomic.LoadUint64((*uint64)(p))
}

//go:noinline
func Store8(p unsafe.Pointer, v uint8) {
	*(*uint8)(p) = v
}

//go:noinline
func Store16(p unsafe.Pointer, v uint16) {
	*(*uint16)(p) = v
}

func Store32(p unsafe.Pointer, v uint32) {
	atomic.StoreUint32((*uint32)(p), v)
}

func Store64(p unsafe.Pointer, v uint64) {
	atomic.StoreUint64((*uint64)(p), v)
}
