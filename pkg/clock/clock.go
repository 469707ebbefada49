package clock

import (
	"sync"
	"time"
)

// Clock abstracts time for code that sleeps between attempts.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time {
	return time.Now()
}

// After wraps time.After.
func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// MockClock fires After immediately and records every requested delay.
type MockClock struct {
	mu      sync.Mutex
	NowTime time.Time
	Waits   []time.Duration
}

// Now returns the mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.NowTime
}

// After records d, moves the mocked time forward by it and fires at once.
func (m *MockClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Waits = append(m.Waits, d)
	m.NowTime = m.NowTime.Add(d)
	ch := make(chan time.Time, 1)
	ch <- m.NowTime
	return ch
}

// Advance moves the mocked time forward without recording a wait.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NowTime = m.NowTime.Add(d)
}
