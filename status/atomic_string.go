package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds string metrics in bytes; a uuid run id fits exactly
const MaxStringLen = 36

// AtomicString is a string metric written by the game loop and read by the status server
// Zero value is ready to use and loads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store publishes val, cut to MaxStringLen on a rune boundary
// Mirroring runs every frame, so an unchanged value is not republished
// Returns true when the stored value changed
func (s *AtomicString) Store(val string) bool {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	if p := s.ptr.Load(); p != nil && *p == val {
		return false
	}
	s.ptr.Store(&val)
	return true
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
