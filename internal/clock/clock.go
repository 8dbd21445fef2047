// package clock isolates the rest of the application from direct OS time calls
package clock

import (
	"sync"
	"time"
)

// Clock provides the current wall-clock time.
//
// Times returned by Real carry a monotonic reading, so subtracting two of them
// is immune to wall-clock adjustments. Durations derived that way are what the
// stopwatch relies on.
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}

// Real reads the host clock
type Real struct{}

// Now returns time.Now()
func (Real) Now() time.Time {
	return time.Now()
}

// Since returns time.Since(t)
func (Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Mock is a manually driven clock for tests and replays
type Mock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMock creates a mock clock set to t
func NewMock(t time.Time) *Mock {
	return &Mock{current: t}
}

// Now returns the mock time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Since returns the duration between t and the mock time
func (m *Mock) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

// Set moves the mock clock to t
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the mock clock forward by d and returns the new time
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	return m.current
}

var (
	_ Clock = Real{}
	_ Clock = (*Mock)(nil)
)
