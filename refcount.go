package atomics

import "github.com/pkg/errors"

// Counted is implemented by objects whose lifetime is governed by an
// explicit reference count.
type Counted interface {
	Retain()
	Release()
}

// RefCount is a reference counter meant to be embedded in a struct, which
// then implements Counted through a pointer.
//
//	type conn struct {
//		atomics.RefCount
//		fd int
//	}
//
//	c := &conn{fd: fd}
//	c.Init(func() { syscall.Close(c.fd) })
type RefCount struct {
	refs Int[int64]
	free func()
}

// Init sets the count to one, owned by the caller, and registers free to run
// when the last reference is released. It must be called before the object
// is shared.
func (r *RefCount) Init(free func()) {
	r.free = free
	r.refs.Store(1, StoreRelaxed)
}

// Retain adds a reference.
func (r *RefCount) Retain() {
	r.refs.Increment(Relaxed)
}

// Release drops a reference. The release that drops the last one runs the
// function given to Init.
func (r *RefCount) Release() {
	switch prev := r.refs.Decrement(AcqRel); {
	case prev == 1:
		if r.free != nil {
			r.free()
		}
	case prev < 1 && debugChecks:
		panic(errors.Wrapf(ErrRefCount, "count was %d", prev))
	}
}

// Count returns the number of references currently held.
func (r *RefCount) Count() int64 {
	return r.refs.Load(LoadAcquire)
}
