package sim

import (
	"runtime"

	"pengine/internal/core"
)

// job is a contiguous range of batch indices assigned to one worker for a
// single pass.
type job struct {
	lo, hi int
}

// Engine advances a world by fixed timesteps, partitioning its batches
// across a persistent pool of workers. Every pass assigns each worker a
// disjoint contiguous range of batches, so particle columns are mutated
// without locks; the only cross-worker traffic is the per-pass removal
// tally each worker reports back over a channel.
type Engine struct {
	world   *World
	dt      float64
	workers int
	jobs    chan job
	tallies chan int
}

// NewEngine starts a worker pool sized from the world's configuration.
// Workers <= 0 selects runtime.NumCPU(); a single worker runs each pass
// synchronously on the caller's goroutine.
func NewEngine(w *World) *Engine {
	workers := w.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tickRate := w.cfg.TickRate
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	e := &Engine{
		world:   w,
		dt:      1 / float64(tickRate),
		workers: workers,
	}
	if workers > 1 {
		e.jobs = make(chan job)
		e.tallies = make(chan int, workers)
		for i := 0; i < workers; i++ {
			go e.worker()
		}
	}
	return e
}

// Workers returns the pool size.
func (e *Engine) Workers() int { return e.workers }

// DT returns the fixed timestep in seconds.
func (e *Engine) DT() float64 { return e.dt }

// Close stops the worker pool. The engine must not be stepped afterwards.
func (e *Engine) Close() {
	if e.jobs != nil {
		close(e.jobs)
		e.jobs = nil
	}
}

func (e *Engine) worker() {
	for j := range e.jobs {
		e.tallies <- e.stepRange(j.lo, j.hi)
	}
}

// Step runs one full update pass over every batch. It returns only after
// every worker has finished its range, so callers are free to read batches,
// spawn particles or adjust fields until the next call.
func (e *Engine) Step() {
	m := len(e.world.batches)
	if e.workers <= 1 || m == 0 {
		e.world.alive -= e.stepRange(0, m)
		return
	}

	// Contiguous disjoint ranges of ⌊m/workers⌋ batches; the last worker
	// absorbs the remainder.
	span := m / e.workers
	for i := 0; i < e.workers; i++ {
		lo, hi := span*i, span*(i+1)
		if i == e.workers-1 {
			hi = m
		}
		e.jobs <- job{lo: lo, hi: hi}
	}

	// Barrier: one tally per worker. Removal counts stay worker-local
	// until this merge, so the live counter is never written concurrently.
	removed := 0
	for i := 0; i < e.workers; i++ {
		removed += <-e.tallies
	}
	e.world.alive -= removed
}

// stepRange integrates one pass over batches [lo, hi) and returns how many
// particles it removed. Live slots are scanned from highest index to lowest
// so that removal only shifts slots that have already been processed.
func (e *Engine) stepRange(lo, hi int) int {
	dt := e.dt
	bounds := e.world.bounds
	fields := e.world.fields

	removed := 0
	for _, b := range e.world.batches[lo:hi] {
		for i := b.n - 1; i >= 0; i-- {
			if !bounds.Contains(b.pos[i]) {
				b.removeAt(i)
				removed++
				continue
			}

			// Semi-implicit Verlet displacement.
			b.pos[i] = b.pos[i].Add(b.vel[i].Mul(dt)).Add(b.acc[i].Mul(dt * dt))

			var force core.Vec2
			for _, f := range fields {
				force = force.Add(f.ForceAt(b.pos[i]))
			}

			// Velocity-Verlet: average of old and new acceleration.
			b.vel[i] = b.vel[i].Add(b.acc[i].Add(force).Mul(0.5 * dt))
			b.acc[i] = force
		}
	}
	return removed
}
