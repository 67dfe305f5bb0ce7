//go:build atomics_debug

package atomics

import "github.com/pkg/errors"

// debugChecks enables assertions on ordering arguments, use after Destroy,
// double Destroy and reference count underflow. Weak compare-and-swap also
// fails spuriously every spuriousPeriod attempts.
const debugChecks = true

const spuriousPeriod = 8

var spuriousTick uint32

// lifecycle records whether a cell has been destroyed.
type lifecycle struct {
	dead uint32
}

func (l *lifecycle) check() {
	if load32(&l.dead, LoadAcquire) != 0 {
		panic(errors.WithStack(ErrDestroyed))
	}
}

func (l *lifecycle) kill() {
	if !casStrong32(&l.dead, 0, 1, AcqRel) {
		panic(errors.Wrap(ErrDestroyed, "Destroy called twice"))
	}
}

//go:nosplit
func spuriousFailure() bool {
	return add32(&spuriousTick, 1, Relaxed)%spuriousPeriod == spuriousPeriod-1
}
