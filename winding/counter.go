package winding

import "sync/atomic"

// PulseCounter accumulates optical encoder edges into a revolution count.
// Increment is called from the edge interrupt handler and may preempt a
// concurrent Read from the control loop, so the count is atomic. Reset must
// only be called while no session is running.
type PulseCounter struct {
	pulses atomic.Uint32
}

// Increment adds one pulse. Safe to call from an interrupt handler; it does
// nothing but the atomic add.
func (c *PulseCounter) Increment() {
	c.pulses.Add(1)
}

// Reset sets the count back to zero for a new session.
func (c *PulseCounter) Reset() {
	c.pulses.Store(0)
}

// Read returns the current pulse count.
func (c *PulseCounter) Read() int {
	return int(c.pulses.Load())
}
