package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric stored as its IEEE-754 bits
// The zero value reads as 0.0
type AtomicFloat struct {
	v atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(val float64) {
	f.v.Store(math.Float64bits(val))
}

// Load returns the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.v.Load())
}

// Add adds delta with a CAS loop and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		bits := f.v.Load()
		sum := math.Float64frombits(bits) + delta
		if f.v.CompareAndSwap(bits, math.Float64bits(sum)) {
			return sum
		}
	}
}
