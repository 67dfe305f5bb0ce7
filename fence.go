package atomics

// ThreadFence establishes a synchronization point that is not attached to
// any one cell. Typical use pairs a Release fence before relaxed stores with
// an Acquire fence after relaxed loads that observed them.
func ThreadFence(order MemoryOrder) {
	checkOrder(order)
	fence(order)
}
