// Package clock abstracts wall time so coupon windows and booking
// references can be exercised at a fixed instant in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a programmable instant.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Set pins the clock to t.
func (c *MockClock) Set(t time.Time) {
	c.current = t
}

// Add advances the clock by d.
func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
