package atomics

import (
	"sync/atomic"
	"unsafe"
)

// The functions in this file are the only users of sync/atomic. Every
// operation of sync/atomic is sequentially consistent, so the order
// argument is always satisfied; it is accepted to keep one contract per
// word size.

// noCopy may be added to structs which must not be copied after first use.
// See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// align64 forces 8-byte alignment of the following field, also on 32-bit
// platforms.
type align64 [0]atomic.Uint64

// 32-bit words.

//go:nosplit
func init32(addr *uint32, val uint32) {
	*addr = val
}

//go:nosplit
func load32(addr *uint32, _ LoadOrder) uint32 {
	return atomic.LoadUint32(addr)
}

//go:nosplit
func store32(addr *uint32, val uint32, _ StoreOrder) {
	atomic.StoreUint32(addr, val)
}

//go:nosplit
func swap32(addr *uint32, val uint32, _ MemoryOrder) uint32 {
	return atomic.SwapUint32(addr, val)
}

// add32 returns the value before the addition.
//
//go:nosplit
func add32(addr *uint32, delta uint32, _ MemoryOrder) uint32 {
	return atomic.AddUint32(addr, delta) - delta
}

//go:nosplit
func sub32(addr *uint32, delta uint32, order MemoryOrder) uint32 {
	return add32(addr, -delta, order)
}

//go:nosplit
func or32(addr *uint32, bits uint32, _ MemoryOrder) uint32 {
	return atomic.OrUint32(addr, bits)
}

//go:nosplit
func and32(addr *uint32, bits uint32, _ MemoryOrder) uint32 {
	return atomic.AndUint32(addr, bits)
}

func xor32(addr *uint32, bits uint32, _ MemoryOrder) uint32 {
	for {
		old := atomic.LoadUint32(addr)
		if atomic.CompareAndSwapUint32(addr, old, old^bits) {
			return old
		}
	}
}

//go:nosplit
func casStrong32(addr *uint32, old, new uint32, _ MemoryOrder) bool {
	return atomic.CompareAndSwapUint32(addr, old, new)
}

//go:nosplit
func casWeak32(addr *uint32, old, new uint32, order MemoryOrder) bool {
	if spuriousFailure() {
		return false
	}
	return casStrong32(addr, old, new, order)
}

// 64-bit words. addr must be 8-byte aligned.

//go:nosplit
func init64(addr *uint64, val uint64) {
	*addr = val
}

//go:nosplit
func load64(addr *uint64, _ LoadOrder) uint64 {
	return atomic.LoadUint64(addr)
}

//go:nosplit
func store64(addr *uint64, val uint64, _ StoreOrder) {
	atomic.StoreUint64(addr, val)
}

//go:nosplit
func swap64(addr *uint64, val uint64, _ MemoryOrder) uint64 {
	return atomic.SwapUint64(addr, val)
}

//go:nosplit
func add64(addr *uint64, delta uint64, _ MemoryOrder) uint64 {
	return atomic.AddUint64(addr, delta) - delta
}

//go:nosplit
func sub64(addr *uint64, delta uint64, order MemoryOrder) uint64 {
	return add64(addr, -delta, order)
}

//go:nosplit
func or64(addr *uint64, bits uint64, _ MemoryOrder) uint64 {
	return atomic.OrUint64(addr, bits)
}

//go:nosplit
func and64(addr *uint64, bits uint64, _ MemoryOrder) uint64 {
	return atomic.AndUint64(addr, bits)
}

func xor64(addr *uint64, bits uint64, _ MemoryOrder) uint64 {
	for {
		old := atomic.LoadUint64(addr)
		if atomic.CompareAndSwapUint64(addr, old, old^bits) {
			return old
		}
	}
}

//go:nosplit
func casStrong64(addr *uint64, old, new uint64, _ MemoryOrder) bool {
	return atomic.CompareAndSwapUint64(addr, old, new)
}

//go:nosplit
func casWeak64(addr *uint64, old, new uint64, order MemoryOrder) bool {
	if spuriousFailure() {
		return false
	}
	return casStrong64(addr, old, new, order)
}

// Pointer words. These keep the referent visible to the garbage collector.

//go:nosplit
func initPtr(addr *unsafe.Pointer, val unsafe.Pointer) {
	*addr = val
}

//go:nosplit
func loadPtr(addr *unsafe.Pointer, _ LoadOrder) unsafe.Pointer {
	return atomic.LoadPointer(addr)
}

//go:nosplit
func storePtr(addr *unsafe.Pointer, val unsafe.Pointer, _ StoreOrder) {
	atomic.StorePointer(addr, val)
}

//go:nosplit
func swapPtr(addr *unsafe.Pointer, val unsafe.Pointer, _ MemoryOrder) unsafe.Pointer {
	return atomic.SwapPointer(addr, val)
}

//go:nosplit
func casStrongPtr(addr *unsafe.Pointer, old, new unsafe.Pointer, _ MemoryOrder) bool {
	return atomic.CompareAndSwapPointer(addr, old, new)
}

//go:nosplit
func casWeakPtr(addr *unsafe.Pointer, old, new unsafe.Pointer, order MemoryOrder) bool {
	if spuriousFailure() {
		return false
	}
	return casStrongPtr(addr, old, new, order)
}

// fenceWord is the location every fence synchronizes on.
var fenceWord struct {
	_ [CacheLineSize]byte
	v uint32
	_ [CacheLineSize]byte
}

// fence is a sequentially consistent read-modify-write of fenceWord. All
// fences therefore fall into a single total order, and each one is a full
// barrier for the calling goroutine.
//
//go:nosplit
func fence(_ MemoryOrder) {
	atomic.AddUint32(&fenceWord.v, 1)
}
