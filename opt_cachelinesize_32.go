//go:build atomics_opt_cachelinesize_32

package atomics

// CacheLineSize is pinned to 32 bytes by the atomics_opt_cachelinesize_32 tag.
const CacheLineSize uintptr = 32
