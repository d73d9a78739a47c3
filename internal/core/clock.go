package core

import "time"

// Clock supplies monotonic wall-clock readings in milliseconds. The step
// scheduler never sleeps; it compares readings against step timestamps to
// decide whether an engine may advance.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	base time.Time
}

// NewSystemClock returns a clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.base).Milliseconds()
}

// ManualClock is a controllable clock for deterministic timing tests.
type ManualClock struct {
	now int64
}

// NewManualClock returns a manual clock starting at zero.
func NewManualClock() *ManualClock { return &ManualClock{} }

// NowMillis returns the current manual reading.
func (c *ManualClock) NowMillis() int64 { return c.now }

// Advance moves the clock forward by the given number of milliseconds.
func (c *ManualClock) Advance(ms int64) { c.now += ms }

// Set jumps the clock to an absolute reading.
func (c *ManualClock) Set(ms int64) { c.now = ms }
