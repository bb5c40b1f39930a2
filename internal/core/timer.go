package core

import "time"

// FixedStep advances a simulation at a fixed timestep decoupled from a
// variable frame rate. Elapsed time is added to an accumulator and whole
// steps are consumed from it, so a single frame may yield zero, one or
// several simulation steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tps)}
}

// Step returns the fixed step duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Pending returns the accumulated time not yet consumed by a step.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Accumulate adds delta to the accumulator and returns the number of whole
// steps consumed from it.
func (f *FixedStep) Accumulate(delta time.Duration) int {
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}

// Advance accumulates the wall-clock time elapsed since the previous call
// and returns the number of steps to run this frame.
func (f *FixedStep) Advance() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Accumulate(delta)
}
