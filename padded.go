package atomics

import "unsafe"

// PaddedInt is an Int that fills whole cache lines, so that neighbouring
// cells in a slice or struct do not share a line.
type PaddedInt[T Integer] struct {
	Int[T]
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(Int[uint64]{})%CacheLineSize) % CacheLineSize]byte
}

// PaddedBool is a Bool that fills whole cache lines.
type PaddedBool struct {
	Bool
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(Bool{})%CacheLineSize) % CacheLineSize]byte
}
