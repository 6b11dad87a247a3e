//go:build debug_volmem

package memutils

// DebugChecksEnabled reports whether the debug_volmem build tag is present
const DebugChecksEnabled bool = true

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_volmem build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
	err := CheckPow2[T](value, name)
	if err != nil {
		panic(err)
	}
}

// DebugCheckAddress panics if address is zero or not aligned to alignment.
// This method no-ops unless the debug_volmem build tag is present.
func DebugCheckAddress(address uintptr, alignment uintptr) {
	err := CheckAddress(address, alignment)
	if err != nil {
		panic(err)
	}
}

// DebugCheckBounds panics if index is not within [0, length).
// This method no-ops unless the debug_volmem build tag is present.
func DebugCheckBounds(index, length int) {
	err := CheckBounds(index, length)
	if err != nil {
		panic(err)
	}
}
