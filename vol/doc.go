// Package vol describes memory-mapped registers and device memory and performs volatile
// accesses on them.
//
// A descriptor (Address, Block, Region, Grid2D, StridedGrid2D, Grid3D) is a small comparable
// value holding a memory.Bus and an address, plus the shape of the memory it covers. Building a
// descriptor is the single point of trust: the constructor takes the caller's word that the
// memory exists, is mapped for as long as the descriptor is used, and is aligned for the element
// type. Every later lookup is bounds checked, and every read or write is exactly one access of
// exactly the element's width.
//
// Read and write capability are carried in the descriptor's type as the phantom parameters R and
// W, each one of No, Safe or Unsafe:
//
//	var DISPCNT = vol.NewReadWrite[uint16](memory.Native, 0x0400_0000)
//	var VCOUNT = vol.NewReadOnly[uint16](memory.Native, 0x0400_0006)
//
//	vol.Write(DISPCNT, 0x0403)
//	line := vol.Read(VCOUNT)
//	vol.Write(VCOUNT, 0) // does not compile: VCOUNT has no write capability
//
// Accesses with Unsafe capability go through ReadUnsafe, WriteUnsafe and ApplyUnsafe, which mark
// the call sites that rely on something beyond the constructor's promise.
//
// Descriptors provide no synchronization. Two goroutines touching the same registers must
// coordinate on their own, in whatever way the device requires.
//
// Building with the debug_volmem tag enables panicking checks for null and misaligned addresses
// on every access. Without it those violations are undefined behavior, as the constructor's
// caller already promised they cannot happen.
package vol
