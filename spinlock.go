package atomics

import (
	"time"
	_ "unsafe"

	"github.com/pkg/errors"
)

// SpinLock is a mutual exclusion lock that busy-waits. It suits critical
// sections of a few instructions; anything longer wants sync.Mutex.
//
// The zero value is an unlocked lock.
type SpinLock struct {
	held Bool
}

// Lock acquires l, spinning until it is free.
func (l *SpinLock) Lock() {
	spins := 0
	for {
		if !l.held.Load(LoadRelaxed) && l.held.CompareAndSwap(false, true, Weak, Acquire) {
			return
		}
		delay(&spins)
	}
}

// TryLock acquires l if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.held.CompareAndSwap(false, true, Strong, Acquire)
}

// Unlock releases l.
func (l *SpinLock) Unlock() {
	if debugChecks {
		if !l.held.Swap(false, Release) {
			panic(errors.WithStack(ErrNotLocked))
		}
		return
	}
	l.held.Store(false, StoreRelease)
}

func delay(spins *int) {
	const yieldSleep = 50 * time.Microsecond
	if runtime_canSpin(*spins) {
		runtime_doSpin()
		*spins++
	} else {
		// Sleeping backs off better than spinning once many waiters pile up.
		time.Sleep(yieldSleep)
		*spins = 0
	}
}

// runtime_canSpin reports whether the scheduler allows another active spin
// after i of them.
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//go:nosplit
func runtime_canSpin(i int) bool

// runtime_doSpin executes a short burst of PAUSE-style spin instructions.
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//go:nosplit
func runtime_doSpin()
