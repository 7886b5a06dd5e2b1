package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven TimeProvider for tests
// The offset from the start instant is held atomically, so frames may read it while a test advances it
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // Nanoseconds since start
}

// NewMockTimeProvider creates a provider frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns start plus everything advanced so far
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t; earlier instants are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
