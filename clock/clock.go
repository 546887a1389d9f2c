// Package clock provides the time sources and the frame scheduler that
// drive the particle field.
package clock

import (
	"sync"
	"time"
)

// Provider supplies the current time.
type Provider interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// NewReal creates a system time provider.
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time with its monotonic reading.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable time source for tests and headless runs.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock creates a mock provider starting at the given time.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the mocked time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mocked time forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
