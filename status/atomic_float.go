package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as its bit pattern; the zero value reads 0
type Float struct {
	bits atomic.Uint64
}

// Set stores v
func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Get loads the value
func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta with a CAS loop and returns the new value
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
