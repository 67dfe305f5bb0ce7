package atomics

import "unsafe"

// Integer is the set of types an Int cell can hold.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Values no wider than 32 bits are kept in a 32-bit word in their
// sign- or zero-extended form. The extension commutes with and, or and xor,
// so those operations run directly on the word; addition does not, and
// narrow adds go through a compare-and-swap loop instead.

//go:nosplit
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

//go:nosplit
func to32[T Integer](v T) uint32 { return uint32(v) }

//go:nosplit
func from32[T Integer](u uint32) T { return T(u) }

//go:nosplit
func to64[T Integer](v T) uint64 { return uint64(v) }

//go:nosplit
func from64[T Integer](u uint64) T { return T(u) }

//go:nosplit
func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// ptrSlot reinterprets a pointer to a *T as a pointer to an unsafe.Pointer.
// Both have the same layout and both are scanned by the garbage collector.
//
//go:nosplit
func ptrSlot[T any](p **T) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(p))
}
