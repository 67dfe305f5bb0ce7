package atomics

// Bool is an atomic boolean cell, stored as 0 or 1 in a 32-bit word.
type Bool struct {
	v Int[uint32]
}

// NewBool returns a cell holding b.
func NewBool(b bool) *Bool {
	c := new(Bool)
	init32(c.v.word(), boolWord(b))
	return c
}

// Load returns the current value.
func (c *Bool) Load(order LoadOrder) bool {
	return c.v.Load(order) != 0
}

// Value is a relaxed load.
func (c *Bool) Value() bool {
	return c.v.Load(LoadRelaxed) != 0
}

// Store replaces the current value with b.
func (c *Bool) Store(b bool, order StoreOrder) {
	c.v.Store(boolWord(b), order)
}

// Swap replaces the current value with b and returns the previous value.
func (c *Bool) Swap(b bool, order MemoryOrder) bool {
	return c.v.Swap(boolWord(b), order) != 0
}

// Or stores the current value OR b and returns the previous value.
func (c *Bool) Or(b bool, order MemoryOrder) bool {
	return c.v.Or(boolWord(b), order) != 0
}

// Xor stores the current value XOR b and returns the previous value.
func (c *Bool) Xor(b bool, order MemoryOrder) bool {
	return c.v.Xor(boolWord(b), order) != 0
}

// And stores the current value AND b and returns the previous value.
func (c *Bool) And(b bool, order MemoryOrder) bool {
	return c.v.And(boolWord(b), order) != 0
}

// CompareAndSwap replaces the value with future if it equals current, and
// reports whether it did.
func (c *Bool) CompareAndSwap(current, future bool, kind CASKind, order MemoryOrder) bool {
	return c.v.CompareAndSwap(boolWord(current), boolWord(future), kind, order)
}

// LoadCompareAndSwap is CompareAndSwap that, on failure, stores the value it
// observed into *current.
func (c *Bool) LoadCompareAndSwap(current *bool, future bool, kind CASKind, orderSwap MemoryOrder, orderLoad LoadOrder) bool {
	w := boolWord(*current)
	if c.v.LoadCompareAndSwap(&w, boolWord(future), kind, orderSwap, orderLoad) {
		return true
	}
	*current = w != 0
	return false
}

// Destroy ends the life of the cell.
func (c *Bool) Destroy() {
	c.v.Destroy()
}
