package components

import "time"

// Spark is a short-lived particle thrown by a landing
type Spark struct {
	VX, VY   float64
	Born     time.Time
	Lifetime time.Duration
	Rune     rune
}

// Expired reports whether the spark has outlived its lifetime at now
func (s Spark) Expired(now time.Time) bool {
	return now.Sub(s.Born) >= s.Lifetime
}

// Progress returns the consumed fraction of the lifetime in [0,1]
func (s Spark) Progress(now time.Time) float64 {
	if s.Lifetime <= 0 {
		return 1
	}
	p := float64(now.Sub(s.Born)) / float64(s.Lifetime)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
