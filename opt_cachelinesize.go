//go:build !atomics_opt_cachelinesize_32 && !atomics_opt_cachelinesize_64 && !atomics_opt_cachelinesize_128 && !atomics_opt_cachelinesize_256

package atomics

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the stride PaddedInt and PaddedBool round up to, and the
// padding around the fence word. By default it follows the target
// architecture as reported by golang.org/x/sys/cpu; build with one of the
// atomics_opt_cachelinesize_{32,64,128,256} tags to pin it instead.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
