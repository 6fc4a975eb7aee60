package core

import "time"

// DefaultTickInterval is the simulated time between generations.
const DefaultTickInterval = time.Second

// Clock accumulates frame time and reports when a generation is due.
// Time only accumulates while running, and surplus past the interval is
// discarded when a tick fires.
type Clock struct {
	interval    time.Duration
	accumulated time.Duration
	running     bool
}

// NewClock constructs a running Clock firing every interval.
func NewClock(interval time.Duration) *Clock {
	c := &Clock{running: true}
	c.SetInterval(interval)
	return c
}

// SetInterval changes the tick interval. Non-positive values fall back to
// DefaultTickInterval.
func (c *Clock) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c.interval = interval
}

// Interval returns the tick interval.
func (c *Clock) Interval() time.Duration { return c.interval }

// Accumulated returns the time gathered since the last tick.
func (c *Clock) Accumulated() time.Duration { return c.accumulated }

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool { return c.running }

// SetRunning pauses or resumes the clock.
func (c *Clock) SetRunning(running bool) { c.running = running }

// Toggle flips between running and paused.
func (c *Clock) Toggle() { c.running = !c.running }

// Advance adds dt and reports whether a generation should fire.
func (c *Clock) Advance(dt time.Duration) bool {
	if !c.running || dt < 0 {
		return false
	}
	c.accumulated += dt
	if c.accumulated >= c.interval {
		c.accumulated = 0
		return true
	}
	return false
}

// Restart zeroes the accumulator without changing the running state.
func (c *Clock) Restart() { c.accumulated = 0 }
