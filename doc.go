// Package atomics provides atomic memory cells over booleans, fixed-width
// integers, pointers and reference-counted handles, with the memory order of
// every access chosen by the caller.
//
// Three ordering types keep illegal combinations unrepresentable: a pure
// load accepts a LoadOrder (no release), a pure store accepts a StoreOrder
// (no acquire), and operations that both read and write accept a
// MemoryOrder.
//
// All cells are served by sync/atomic, whose operations are sequentially
// consistent. Each requested order is therefore honoured by an operation at
// least as strong. The order arguments still document intent and are
// validated when built with the atomics_debug tag.
//
// The zero value of every cell is ready to use and holds zero, false or nil.
// Cells must not be copied after first use.
package atomics
