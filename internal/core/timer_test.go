package core

import (
	"testing"
	"time"
)

func TestAccumulateConsumesWholeSteps(t *testing.T) {
	fs := NewFixedStep(60)
	dt := fs.Step()

	if got := fs.Accumulate(dt * 5 / 2); got != 2 {
		t.Fatalf("2.5 steps of frame time yielded %d steps, want 2", got)
	}
	if got := fs.Pending(); got != dt/2 {
		t.Fatalf("pending = %v after consuming, want %v", got, dt/2)
	}

	// The remainder carries into the next frame.
	if got := fs.Accumulate(dt / 2); got != 1 {
		t.Fatalf("remainder plus half a step yielded %d steps, want 1", got)
	}
	if got := fs.Pending(); got != 0 {
		t.Fatalf("pending = %v after exact consumption, want 0", got)
	}
}

func TestAccumulateBelowStepYieldsNothing(t *testing.T) {
	fs := NewFixedStep(60)
	if got := fs.Accumulate(fs.Step() - time.Nanosecond); got != 0 {
		t.Fatalf("frame shorter than a step yielded %d steps, want 0", got)
	}
	if got := fs.Pending(); got != fs.Step()-time.Nanosecond {
		t.Fatalf("pending = %v, want the full frame delta", got)
	}
}

func TestNewFixedStepClampsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Step(); got != time.Second/60 {
		t.Fatalf("step for tps<=0 = %v, want %v", got, time.Second/60)
	}
}
