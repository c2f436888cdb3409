package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Precision is the resolution at which card timestamps are recorded. It
// matches the millisecond fields of the persisted snapshot.
const Precision = time.Millisecond

// NowUTC reads c and normalizes the instant to UTC at Precision.
func NowUTC(c Clock) time.Time {
	return c.Now().UTC().Truncate(Precision)
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
