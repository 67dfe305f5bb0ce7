//go:build atomics_opt_cachelinesize_64

package atomics

// CacheLineSize is pinned to 64 bytes by the atomics_opt_cachelinesize_64 tag.
const CacheLineSize uintptr = 64
