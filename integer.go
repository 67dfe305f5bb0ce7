package atomics

import "unsafe"

// Int is an atomic integer cell. Arithmetic wraps around on overflow.
// Counters usually want Relaxed.
type Int[T Integer] struct {
	life lifecycle
	_    noCopy
	_    align64
	// slot holds 64-bit values whole; narrower values live in the
	// 32-bit word at its address.
	slot uint64
}

// Aliases for every supported width.
type (
	Int8    = Int[int8]
	Int16   = Int[int16]
	Int32   = Int[int32]
	Int64   = Int[int64]
	Uint8   = Int[uint8]
	Uint16  = Int[uint16]
	Uint32  = Int[uint32]
	Uint64  = Int[uint64]
	Uint    = Int[uint]
	Uintptr = Int[uintptr]
)

// NewInt returns a cell holding v.
func NewInt[T Integer](v T) *Int[T] {
	c := new(Int[T])
	if c.wide() {
		init64(&c.slot, to64(v))
	} else {
		init32(c.word(), to32(v))
	}
	return c
}

//go:nosplit
func (c *Int[T]) wide() bool { return sizeOf[T]() == 8 }

//go:nosplit
func (c *Int[T]) narrow() bool { return sizeOf[T]() < 4 }

//go:nosplit
func (c *Int[T]) word() *uint32 { return (*uint32)(unsafe.Pointer(&c.slot)) }

// Load returns the current value.
func (c *Int[T]) Load(order LoadOrder) T {
	c.life.check()
	checkLoadOrder(order)
	return c.load(order)
}

// Value is a relaxed load.
func (c *Int[T]) Value() T {
	return c.Load(LoadRelaxed)
}

func (c *Int[T]) load(order LoadOrder) T {
	if c.wide() {
		return from64[T](load64(&c.slot, order))
	}
	return from32[T](load32(c.word(), order))
}

// Store replaces the current value with v.
func (c *Int[T]) Store(v T, order StoreOrder) {
	c.life.check()
	checkStoreOrder(order)
	if c.wide() {
		store64(&c.slot, to64(v), order)
		return
	}
	store32(c.word(), to32(v), order)
}

// Swap replaces the current value with v and returns the previous value.
func (c *Int[T]) Swap(v T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	if c.wide() {
		return from64[T](swap64(&c.slot, to64(v), order))
	}
	return from32[T](swap32(c.word(), to32(v), order))
}

// Add adds delta and returns the value before the addition.
func (c *Int[T]) Add(delta T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	return c.add(delta, order)
}

// Sub subtracts delta and returns the value before the subtraction.
func (c *Int[T]) Sub(delta T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	return c.add(-delta, order)
}

// Increment is Add(1, order).
func (c *Int[T]) Increment(order MemoryOrder) T {
	return c.Add(1, order)
}

// Decrement is Sub(1, order).
func (c *Int[T]) Decrement(order MemoryOrder) T {
	return c.Sub(1, order)
}

func (c *Int[T]) add(delta T, order MemoryOrder) T {
	switch {
	case c.wide():
		return from64[T](add64(&c.slot, to64(delta), order))
	case c.narrow():
		w := c.word()
		for {
			old := load32(w, LoadRelaxed)
			if casStrong32(w, old, to32(from32[T](old)+delta), order) {
				return from32[T](old)
			}
		}
	default:
		return from32[T](add32(c.word(), to32(delta), order))
	}
}

// Or sets the bits of mask and returns the previous value.
func (c *Int[T]) Or(mask T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	if c.wide() {
		return from64[T](or64(&c.slot, to64(mask), order))
	}
	return from32[T](or32(c.word(), to32(mask), order))
}

// Xor toggles the bits of mask and returns the previous value.
func (c *Int[T]) Xor(mask T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	if c.wide() {
		return from64[T](xor64(&c.slot, to64(mask), order))
	}
	return from32[T](xor32(c.word(), to32(mask), order))
}

// And clears the bits not in mask and returns the previous value.
func (c *Int[T]) And(mask T, order MemoryOrder) T {
	c.life.check()
	checkOrder(order)
	if c.wide() {
		return from64[T](and64(&c.slot, to64(mask), order))
	}
	return from32[T](and32(c.word(), to32(mask), order))
}

// CompareAndSwap replaces the value with future if it equals current, and
// reports whether it did. A Weak compare-and-swap may fail even when the
// values are equal.
func (c *Int[T]) CompareAndSwap(current, future T, kind CASKind, order MemoryOrder) bool {
	c.life.check()
	checkOrder(order)
	return c.cas(current, future, kind, order)
}

// LoadCompareAndSwap is CompareAndSwap that, on failure, stores the value it
// observed into *current so a retry loop needs no separate load.
//
// orderLoad must not be stronger than the read half of orderSwap; in
// particular a Release swap only admits LoadRelaxed.
func (c *Int[T]) LoadCompareAndSwap(current *T, future T, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	c.life.check()
	checkCASOrders(orderSwap, orderLoad)
	for {
		expected := *current
		if c.cas(expected, future, kind, orderSwap) {
			return true
		}
		observed := c.load(orderLoad)
		if kind == Weak || observed != expected {
			*current = observed
			return false
		}
	}
}

func (c *Int[T]) cas(current, future T, kind CASKind, order MemoryOrder) bool {
	if c.wide() {
		if kind == Weak {
			return casWeak64(&c.slot, to64(current), to64(future), order)
		}
		return casStrong64(&c.slot, to64(current), to64(future), order)
	}
	if kind == Weak {
		return casWeak32(c.word(), to32(current), to32(future), order)
	}
	return casStrong32(c.word(), to32(current), to32(future), order)
}

// Destroy ends the life of the cell. Its storage is reclaimed by the garbage
// collector; builds tagged atomics_debug panic on any later use.
func (c *Int[T]) Destroy() {
	c.life.kill()
}
