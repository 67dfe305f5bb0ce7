package atomics

import "strconv"

// MemoryOrder is the ordering of an operation that both reads and writes a
// cell: swaps, fetch-and-modify operations and compare-and-swap.
//
// The numeric values follow the C11 memory_order enumeration. Consume (1) is
// not offered.
type MemoryOrder uint32

const (
	Relaxed    MemoryOrder = 0
	Acquire    MemoryOrder = 2
	Release    MemoryOrder = 3
	AcqRel     MemoryOrder = 4
	Sequential MemoryOrder = 5
)

// LoadOrder is the ordering of a pure load. It has no release variant.
type LoadOrder uint32

const (
	LoadRelaxed    = LoadOrder(Relaxed)
	LoadAcquire    = LoadOrder(Acquire)
	LoadSequential = LoadOrder(Sequential)
)

// StoreOrder is the ordering of a pure store. It has no acquire variant.
type StoreOrder uint32

const (
	StoreRelaxed    = StoreOrder(Relaxed)
	StoreRelease    = StoreOrder(Release)
	StoreSequential = StoreOrder(Sequential)
)

// CASKind selects between a compare-and-swap that may fail spuriously (Weak)
// and one that fails only when the comparison does not match (Strong).
//
// Weak must only be used inside a retry loop.
type CASKind uint8

const (
	Weak CASKind = iota
	Strong
)

// Valid reports whether o is one of the declared orders.
func (o MemoryOrder) Valid() bool {
	switch o {
	case Relaxed, Acquire, Release, AcqRel, Sequential:
		return true
	}
	return false
}

func (o MemoryOrder) String() string {
	switch o {
	case Relaxed:
		return "relaxed"
	case Acquire:
		return "acquire"
	case Release:
		return "release"
	case AcqRel:
		return "acq_rel"
	case Sequential:
		return "sequential"
	}
	return "MemoryOrder(" + strconv.FormatUint(uint64(o), 10) + ")"
}

// Valid reports whether o is one of the declared load orders.
func (o LoadOrder) Valid() bool {
	switch o {
	case LoadRelaxed, LoadAcquire, LoadSequential:
		return true
	}
	return false
}

func (o LoadOrder) String() string {
	if o.Valid() {
		return MemoryOrder(o).String()
	}
	return "LoadOrder(" + strconv.FormatUint(uint64(o), 10) + ")"
}

// Valid reports whether o is one of the declared store orders.
func (o StoreOrder) Valid() bool {
	switch o {
	case StoreRelaxed, StoreRelease, StoreSequential:
		return true
	}
	return false
}

func (o StoreOrder) String() string {
	if o.Valid() {
		return MemoryOrder(o).String()
	}
	return "StoreOrder(" + strconv.FormatUint(uint64(o), 10) + ")"
}

func (k CASKind) String() string {
	switch k {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return "CASKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// loadPart is the ordering the read half of o provides.
func (o MemoryOrder) loadPart() LoadOrder {
	switch o {
	case Acquire, AcqRel:
		return LoadAcquire
	case Sequential:
		return LoadSequential
	}
	return LoadRelaxed
}

// compatible reports whether orderLoad may be used as the failure ordering of
// a compare-and-swap whose success ordering is orderSwap: the failure load
// must not be stronger than the read half of the swap.
func compatible(orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	return orderLoad <= orderSwap.loadPart()
}

func checkOrder(o MemoryOrder) {
	if debugChecks && !o.Valid() {
		panic(wrapf(ErrInvalidOrder, "%s", o))
	}
}

func checkLoadOrder(o LoadOrder) {
	if debugChecks && !o.Valid() {
		panic(wrapf(ErrInvalidOrder, "%s", o))
	}
}

func checkStoreOrder(o StoreOrder) {
	if debugChecks && !o.Valid() {
		panic(wrapf(ErrInvalidOrder, "%s", o))
	}
}

func checkCASOrders(orderSwap MemoryOrder, orderLoad LoadOrder) {
	if debugChecks {
		checkOrder(orderSwap)
		checkLoadOrder(orderLoad)
		if !compatible(orderSwap, orderLoad) {
			panic(wrapf(ErrInvalidOrder, "load order %s is stronger than swap order %s", orderLoad, orderSwap))
		}
	}
}
