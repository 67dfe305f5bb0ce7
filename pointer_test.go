package atomics

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type point struct{ x, y, z float64 }

const raceIterations = 2000

func TestPointer_Typed(t *testing.T) {
	var zero Pointer[point]
	require.Nil(t, zero.Load(LoadSequential))

	p1, p2 := &point{x: 1}, &point{x: 2}
	c := NewPointer(p1)
	assert.Same(t, p1, c.Load(LoadAcquire))
	assert.Same(t, p1, c.Value())

	assert.Same(t, p1, c.Swap(p2, Sequential))
	assert.Same(t, p2, c.Value())

	c.Store(nil, StoreRelease)
	assert.Nil(t, c.Value())

	assert.False(t, c.CompareAndSwap(p1, p2, Strong, Sequential))
	assert.True(t, c.CompareAndSwap(nil, p2, Strong, Sequential))
	assert.Same(t, p2, c.Value())

	current := p1
	assert.False(t, c.LoadCompareAndSwap(&current, nil, Strong, Sequential, LoadSequential))
	assert.Same(t, p2, current)
	assert.True(t, c.LoadCompareAndSwap(&current, p1, Strong, Sequential, LoadSequential))
	assert.Same(t, p1, c.Value())
}

func TestPointer_Unsafe(t *testing.T) {
	var zero UnsafePointer
	require.Nil(t, zero.Load(LoadSequential))

	a, b := new(int), new(int)
	pa, pb := unsafe.Pointer(a), unsafe.Pointer(b)

	c := NewUnsafePointer(pa)
	assert.Equal(t, pa, c.Load(LoadRelaxed))
	assert.Equal(t, pa, c.Swap(pb, AcqRel))
	assert.Equal(t, pb, c.Value())

	c.Store(pa, StoreSequential)
	assert.False(t, c.CompareAndSwap(pb, nil, Strong, Sequential))
	assert.True(t, c.CompareAndSwap(pa, nil, Strong, Sequential))
	assert.Nil(t, c.Value())

	current := pa
	assert.False(t, c.LoadCompareAndSwap(&current, pb, Strong, Sequential, LoadRelaxed))
	assert.Nil(t, current)
	for !c.LoadCompareAndSwap(&current, pb, Weak, Sequential, LoadRelaxed) {
	}
	assert.Equal(t, pb, c.Value())
}

// raceFree runs two goroutines that both try to claim the point held by c
// using claim; it fails the test unless exactly one of them succeeds.
func raceFree(t *testing.T, claim func(c *Pointer[point]) (claimed, done bool)) {
	t.Helper()
	for range raceIterations {
		c := NewPointer(&point{})
		var freed Int32
		var g errgroup.Group
		for range 2 {
			g.Go(func() error {
				for {
					claimed, done := claim(c)
					if claimed {
						freed.Increment(Relaxed)
					}
					if done {
						return nil
					}
				}
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, int32(1), freed.Value())
		c.Destroy()
	}
}

func TestPointer_RaceCAS(t *testing.T) {
	raceFree(t, func(c *Pointer[point]) (bool, bool) {
		p := c.Load(LoadAcquire)
		if p == nil {
			return false, true
		}
		return c.CompareAndSwap(p, nil, Weak, Release), false
	})
}

func TestPointer_RaceLoadCAS(t *testing.T) {
	raceFree(t, func(c *Pointer[point]) (bool, bool) {
		p := c.Value()
		for p != nil {
			if c.LoadCompareAndSwap(&p, nil, Weak, Release, LoadRelaxed) {
				return true, true
			}
		}
		return false, true
	})
}

func TestPointer_RaceSwap(t *testing.T) {
	raceFree(t, func(c *Pointer[point]) (bool, bool) {
		if c.Swap(nil, Acquire) != nil {
			return true, false
		}
		return false, true
	})
}
