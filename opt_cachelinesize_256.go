//go:build atomics_opt_cachelinesize_256

package atomics

// CacheLineSize is pinned to 256 bytes by the atomics_opt_cachelinesize_256 tag.
const CacheLineSize uintptr = 256
