package core

import "time"

// FrameClock turns host frame timestamps into simulation deltas.
// The only state it keeps is the previous timestamp.
type FrameClock struct {
	maxDT  float64
	last   time.Time
	primed bool
}

// NewFrameClock creates a clock that never reports more than maxDT seconds
// for a single frame.
func NewFrameClock(maxDT float64) *FrameClock {
	return &FrameClock{maxDT: maxDT}
}

// Advance records now and returns the elapsed seconds since the previous call,
// clamped to [0, maxDT]. The first call after construction or Reset returns 0.
func (c *FrameClock) Advance(now time.Time) float64 {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDT > 0 && dt > c.maxDT {
		return c.maxDT
	}
	return dt
}

// Reset forgets the previous timestamp so the next frame starts fresh.
func (c *FrameClock) Reset() {
	c.primed = false
	c.last = time.Time{}
}
