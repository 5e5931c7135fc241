// Package testrig provides deterministic stand-ins for the HAL clock and serial link.
package testrig

import (
	"sync"
	"time"
)

// Clock is a virtual clock. Sleep advances time instantly and then runs the OnSleep
// hook, which is where scripted tests inject button presses and host lines.
type Clock struct {
	mu    sync.Mutex
	now   time.Time
	slept time.Duration
	calls int

	OnSleep func(now time.Time)
}

// NewClock returns a clock starting at the Unix epoch.
func NewClock() *Clock {
	return &Clock{now: time.Unix(0, 0)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Sleep(d time.Duration) {
	c.mu.Lock()
	if d > 0 {
		c.now = c.now.Add(d)
		c.slept += d
	}
	c.calls++
	now := c.now
	hook := c.OnSleep
	c.mu.Unlock()

	if hook != nil {
		hook(now)
	}
}

// Slept returns the total virtual time spent sleeping.
func (c *Clock) Slept() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slept
}

// Sleeps returns how many times Sleep was called.
func (c *Clock) Sleeps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
