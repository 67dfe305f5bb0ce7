package atomics

import "unsafe"

// Reference is an atomic cell that owns one reference to the object it
// holds. The cell holds a reference iff its pointer is non-nil.
//
// Ownership rules:
//   - values passed in are retained by the cell; the caller keeps its own
//     reference;
//   - values handed out by Swap, Take and a successful CompareAndSwap carry
//     the cell's former reference, which the caller must Release;
//   - Load hands out a borrowed pointer that the cell may release at any
//     time after a concurrent Store, Swap or Take.
type Reference[T any, P interface {
	*T
	Counted
}] struct {
	c pointerCell
}

// NewReference returns a cell holding ref, which it retains if non-nil.
func NewReference[T any, P interface {
	*T
	Counted
}](ref P) *Reference[T, P] {
	x := new(Reference[T, P])
	retain[T, P](ref)
	initPtr(&x.c.p, unsafe.Pointer((*T)(ref)))
	return x
}

func retain[T any, P interface {
	*T
	Counted
}](ref P) {
	if (*T)(ref) != nil {
		ref.Retain()
	}
}

func release[T any, P interface {
	*T
	Counted
}](ref P) {
	if (*T)(ref) != nil {
		ref.Release()
	}
}

//go:nosplit
func (x *Reference[T, P]) to(p unsafe.Pointer) P { return P((*T)(p)) }

//go:nosplit
func (x *Reference[T, P]) from(ref P) unsafe.Pointer { return unsafe.Pointer((*T)(ref)) }

// Load returns the current object without transferring a reference.
func (x *Reference[T, P]) Load(order LoadOrder) P {
	return x.to(x.c.load(order))
}

// Value is a relaxed Load.
func (x *Reference[T, P]) Value() P {
	return x.to(x.c.load(LoadRelaxed))
}

// Store replaces the held object with ref. ref is retained before it is
// published; the previous object is released once the cell no longer
// refers to it.
func (x *Reference[T, P]) Store(ref P, order StoreOrder) {
	x.c.life.check()
	checkStoreOrder(order)
	retain[T, P](ref)
	old := x.c.swap(x.from(ref), MemoryOrder(order))
	release[T, P](x.to(old))
}

// Swap replaces the held object with ref, retaining it, and returns the
// previous object. The caller owns the returned reference.
func (x *Reference[T, P]) Swap(ref P, order MemoryOrder) P {
	x.c.life.check()
	checkOrder(order)
	retain[T, P](ref)
	return x.to(x.c.swap(x.from(ref), order))
}

// CompareAndSwap replaces the held object with future if the cell holds
// current, and reports whether it did. On success the cell owns a new
// reference to future and the caller owns the cell's former reference to
// current, which it must Release.
//
// future is retained before the attempt so it is never published
// unretained. On failure that retain is undone: future sees one balanced
// Retain/Release pair and its count ends where it started.
func (x *Reference[T, P]) CompareAndSwap(current, future P, kind CASKind, order MemoryOrder) bool {
	x.c.life.check()
	checkOrder(order)
	retain[T, P](future)
	if x.c.cas(x.from(current), x.from(future), kind, order) {
		return true
	}
	release[T, P](future)
	return false
}

// LoadCompareAndSwap is CompareAndSwap that, on failure, stores the object
// it observed into *current. The observed object is borrowed, as with Load.
// A rejected future sees one balanced Retain/Release pair.
func (x *Reference[T, P]) LoadCompareAndSwap(current *P, future P, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	x.c.life.check()
	checkCASOrders(orderSwap, orderLoad)
	retain[T, P](future)
	expected := x.from(*current)
	if x.c.loadCAS(&expected, x.from(future), kind, orderSwap, orderLoad) {
		return true
	}
	release[T, P](future)
	*current = x.to(expected)
	return false
}

// SwapIfNil stores ref only if the cell is empty, and reports whether it
// did. A cell that rejects ref never holds a reference to it; ref then sees
// one balanced Retain/Release pair, since it is retained before the
// attempt and released after the failure.
func (x *Reference[T, P]) SwapIfNil(ref P, order MemoryOrder) bool {
	x.c.life.check()
	checkOrder(order)
	retain[T, P](ref)
	if x.c.cas(nil, x.from(ref), Strong, order) {
		return true
	}
	release[T, P](ref)
	return false
}

// Take empties the cell and returns what it held, or nil. The caller owns
// the returned reference.
func (x *Reference[T, P]) Take(order MemoryOrder) P {
	return x.to(x.c.swap(nil, order))
}

// Destroy releases the held object, if any, and ends the life of the cell.
// No other operation may run concurrently with or after Destroy.
func (x *Reference[T, P]) Destroy() {
	release[T, P](x.Take(Relaxed))
	x.c.life.kill()
}
