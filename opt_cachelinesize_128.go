//go:build atomics_opt_cachelinesize_128

package atomics

// CacheLineSize is pinned to 128 bytes by the atomics_opt_cachelinesize_128 tag.
const CacheLineSize uintptr = 128
