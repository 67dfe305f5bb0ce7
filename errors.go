package atomics

import "github.com/pkg/errors"

// Programmer errors. They are never returned; builds tagged atomics_debug
// panic with a value wrapping one of them, which errors.Is recognises.
var (
	// ErrInvalidOrder reports an order outside its enumeration, or a
	// compare-and-swap failure order stronger than its success order.
	ErrInvalidOrder = errors.New("atomics: invalid memory order")
	// ErrDestroyed reports an operation on a destroyed cell, or a second
	// Destroy.
	ErrDestroyed = errors.New("atomics: cell used after Destroy")
	// ErrRefCount reports a RefCount released more times than retained.
	ErrRefCount = errors.New("atomics: reference count dropped below zero")
	// ErrNotLocked reports Unlock of a SpinLock that is not held.
	ErrNotLocked = errors.New("atomics: unlock of unlocked SpinLock")
)

func wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
