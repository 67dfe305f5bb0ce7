package atomics

import (
	"sync/atomic"
	"testing"

	uberatomic "go.uber.org/atomic"
)

func BenchmarkAdd(b *testing.B) {
	b.Run("Int64", func(b *testing.B) {
		var c Int64
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				c.Add(1, Relaxed)
			}
		})
	})
	b.Run("Int8", func(b *testing.B) {
		var c Int8
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				c.Add(1, Relaxed)
			}
		})
	})
	b.Run("PaddedInt64", func(b *testing.B) {
		var c PaddedInt[int64]
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				c.Add(1, Relaxed)
			}
		})
	})
	b.Run("sync/atomic", func(b *testing.B) {
		var c atomic.Int64
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				c.Add(1)
			}
		})
	})
	b.Run("uber", func(b *testing.B) {
		c := uberatomic.NewInt64(0)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				c.Inc()
			}
		})
	})
}

func BenchmarkLoad(b *testing.B) {
	b.Run("Int64", func(b *testing.B) {
		c := NewInt[int64](1)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = c.Load(LoadAcquire)
			}
		})
	})
	b.Run("Pointer", func(b *testing.B) {
		c := NewPointer(&point{})
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = c.Load(LoadAcquire)
			}
		})
	})
	b.Run("sync/atomic", func(b *testing.B) {
		var c atomic.Int64
		c.Store(1)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = c.Load()
			}
		})
	})
	b.Run("uber", func(b *testing.B) {
		c := uberatomic.NewInt64(1)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = c.Load()
			}
		})
	})
}

func BenchmarkCASLoop(b *testing.B) {
	b.Run("LoadCompareAndSwap", func(b *testing.B) {
		var c Uint64
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				current := c.Load(LoadRelaxed)
				for !c.LoadCompareAndSwap(&current, current*3+1, Weak, AcqRel, LoadRelaxed) {
				}
			}
		})
	})
	b.Run("uber", func(b *testing.B) {
		c := uberatomic.NewUint64(0)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				for {
					current := c.Load()
					if c.CompareAndSwap(current, current*3+1) {
						break
					}
				}
			}
		})
	})
}

func BenchmarkSpinLock(b *testing.B) {
	var l SpinLock
	n := 0
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			n++
			l.Unlock()
		}
	})
}
