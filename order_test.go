package atomics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Strings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Relaxed.String(), "relaxed"},
		{Acquire.String(), "acquire"},
		{Release.String(), "release"},
		{AcqRel.String(), "acq_rel"},
		{Sequential.String(), "sequential"},
		{MemoryOrder(1).String(), "MemoryOrder(1)"},
		{LoadAcquire.String(), "acquire"},
		{LoadOrder(3).String(), "LoadOrder(3)"},
		{StoreRelease.String(), "release"},
		{StoreOrder(2).String(), "StoreOrder(2)"},
		{Weak.String(), "weak"},
		{Strong.String(), "strong"},
		{CASKind(7).String(), "CASKind(7)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}

func TestOrder_Valid(t *testing.T) {
	for o := MemoryOrder(0); o < 8; o++ {
		assert.Equal(t, o != 1 && o <= 5, o.Valid(), "%s", o)
	}
	for o := LoadOrder(0); o < 8; o++ {
		assert.Equal(t, o == 0 || o == 2 || o == 5, o.Valid(), "%s", o)
	}
	for o := StoreOrder(0); o < 8; o++ {
		assert.Equal(t, o == 0 || o == 3 || o == 5, o.Valid(), "%s", o)
	}
}

func TestOrder_LoadAndStoreMatchMemoryOrder(t *testing.T) {
	assert.Equal(t, Relaxed, MemoryOrder(LoadRelaxed))
	assert.Equal(t, Acquire, MemoryOrder(LoadAcquire))
	assert.Equal(t, Sequential, MemoryOrder(LoadSequential))
	assert.Equal(t, Relaxed, MemoryOrder(StoreRelaxed))
	assert.Equal(t, Release, MemoryOrder(StoreRelease))
	assert.Equal(t, Sequential, MemoryOrder(StoreSequential))
}

func TestOrder_Compatible(t *testing.T) {
	tests := []struct {
		swap MemoryOrder
		load LoadOrder
		ok   bool
	}{
		{Relaxed, LoadRelaxed, true},
		{Relaxed, LoadAcquire, false},
		{Relaxed, LoadSequential, false},
		{Acquire, LoadRelaxed, true},
		{Acquire, LoadAcquire, true},
		{Acquire, LoadSequential, false},
		{Release, LoadRelaxed, true},
		{Release, LoadAcquire, false},
		{Release, LoadSequential, false},
		{AcqRel, LoadRelaxed, true},
		{AcqRel, LoadAcquire, true},
		{AcqRel, LoadSequential, false},
		{Sequential, LoadRelaxed, true},
		{Sequential, LoadAcquire, true},
		{Sequential, LoadSequential, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, compatible(tt.swap, tt.load), "swap %s, load %s", tt.swap, tt.load)
	}
}
