package atomics

import "unsafe"

// pointerCell is the storage shared by Pointer, UnsafePointer and
// Reference. Conversions to the typed forms happen in the wrappers only.
type pointerCell struct {
	life lifecycle
	_    noCopy
	p    unsafe.Pointer
}

func (c *pointerCell) load(order LoadOrder) unsafe.Pointer {
	c.life.check()
	checkLoadOrder(order)
	return loadPtr(&c.p, order)
}

func (c *pointerCell) store(v unsafe.Pointer, order StoreOrder) {
	c.life.check()
	checkStoreOrder(order)
	storePtr(&c.p, v, order)
}

func (c *pointerCell) swap(v unsafe.Pointer, order MemoryOrder) unsafe.Pointer {
	c.life.check()
	checkOrder(order)
	return swapPtr(&c.p, v, order)
}

func (c *pointerCell) cas(current, future unsafe.Pointer, kind CASKind, order MemoryOrder) bool {
	c.life.check()
	checkOrder(order)
	if kind == Weak {
		return casWeakPtr(&c.p, current, future, order)
	}
	return casStrongPtr(&c.p, current, future, order)
}

func (c *pointerCell) loadCAS(current *unsafe.Pointer, future unsafe.Pointer, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	c.life.check()
	checkCASOrders(orderSwap, orderLoad)
	for {
		expected := *current
		var ok bool
		if kind == Weak {
			ok = casWeakPtr(&c.p, expected, future, orderSwap)
		} else {
			ok = casStrongPtr(&c.p, expected, future, orderSwap)
		}
		if ok {
			return true
		}
		observed := loadPtr(&c.p, orderLoad)
		if kind == Weak || observed != expected {
			*current = observed
			return false
		}
	}
}

// Pointer is an atomic cell holding a *T. Publishing a pointee usually
// wants a Release store paired with Acquire loads.
type Pointer[T any] struct {
	// Mention T in a field to disallow conversion between Pointer types.
	_ [0]*T
	c pointerCell
}

// NewPointer returns a cell holding p.
func NewPointer[T any](p *T) *Pointer[T] {
	x := new(Pointer[T])
	initPtr(&x.c.p, unsafe.Pointer(p))
	return x
}

// Load returns the current pointer.
func (x *Pointer[T]) Load(order LoadOrder) *T { return (*T)(x.c.load(order)) }

// Value is a relaxed load.
func (x *Pointer[T]) Value() *T { return (*T)(x.c.load(LoadRelaxed)) }

// Store replaces the current pointer with p.
func (x *Pointer[T]) Store(p *T, order StoreOrder) { x.c.store(unsafe.Pointer(p), order) }

// Swap replaces the current pointer with p and returns the previous one.
func (x *Pointer[T]) Swap(p *T, order MemoryOrder) *T {
	return (*T)(x.c.swap(unsafe.Pointer(p), order))
}

// CompareAndSwap replaces the pointer with future if it equals current, and
// reports whether it did.
func (x *Pointer[T]) CompareAndSwap(current, future *T, kind CASKind, order MemoryOrder) bool {
	return x.c.cas(unsafe.Pointer(current), unsafe.Pointer(future), kind, order)
}

// LoadCompareAndSwap is CompareAndSwap that, on failure, stores the pointer
// it observed into *current.
func (x *Pointer[T]) LoadCompareAndSwap(current **T, future *T, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	return x.c.loadCAS(ptrSlot(current), unsafe.Pointer(future), kind, orderSwap, orderLoad)
}

// Destroy ends the life of the cell. The pointee is not touched.
func (x *Pointer[T]) Destroy() { x.c.life.kill() }

// UnsafePointer is an atomic cell holding an untyped pointer. It serves
// raw and opaque pointers alike.
type UnsafePointer struct {
	c pointerCell
}

// NewUnsafePointer returns a cell holding p.
func NewUnsafePointer(p unsafe.Pointer) *UnsafePointer {
	x := new(UnsafePointer)
	initPtr(&x.c.p, p)
	return x
}

// Load returns the current pointer.
func (x *UnsafePointer) Load(order LoadOrder) unsafe.Pointer { return x.c.load(order) }

// Value is a relaxed load.
func (x *UnsafePointer) Value() unsafe.Pointer { return x.c.load(LoadRelaxed) }

// Store replaces the current pointer with p.
func (x *UnsafePointer) Store(p unsafe.Pointer, order StoreOrder) { x.c.store(p, order) }

// Swap replaces the current pointer with p and returns the previous one.
func (x *UnsafePointer) Swap(p unsafe.Pointer, order MemoryOrder) unsafe.Pointer {
	return x.c.swap(p, order)
}

// CompareAndSwap replaces the pointer with future if it equals current, and
// reports whether it did.
func (x *UnsafePointer) CompareAndSwap(current, future unsafe.Pointer, kind CASKind, order MemoryOrder) bool {
	return x.c.cas(current, future, kind, order)
}

// LoadCompareAndSwap is CompareAndSwap that, on failure, stores the pointer
// it observed into *current.
func (x *UnsafePointer) LoadCompareAndSwap(current *unsafe.Pointer, future unsafe.Pointer, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	return x.c.loadCAS(current, future, kind, orderSwap, orderLoad)
}

// Destroy ends the life of the cell.
func (x *UnsafePointer) Destroy() { x.c.life.kill() }
