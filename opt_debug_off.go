//go:build !atomics_debug

package atomics

const debugChecks = false

type lifecycle struct{}

//go:nosplit
func (*lifecycle) check() {}

//go:nosplit
func (*lifecycle) kill() {}

//go:nosplit
func spuriousFailure() bool { return false }
