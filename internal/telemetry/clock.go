package telemetry

import "time"

// BusClock paces snapshot delivery at a steady bus rate so the telemetry
// cadence stays independent of the display refresh rate.
type BusClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewBusClock constructs a clock targeting the given rate in Hz.
func NewBusClock(hz int) *BusClock {
	if hz <= 0 {
		hz = 20
	}
	c := &BusClock{}
	c.SetRate(hz)
	c.accumulator = c.step
	return c
}

// SetRate changes the bus rate. Safe to call from the frame loop.
func (c *BusClock) SetRate(hz int) {
	if hz <= 0 {
		hz = 20
	}
	c.step = time.Second / time.Duration(hz)
}

// Tick reports whether a new snapshot is due.
func (c *BusClock) Tick() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	c.accumulator += delta
	if c.accumulator >= c.step {
		c.accumulator -= c.step
		return true
	}
	return false
}
