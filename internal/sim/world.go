package sim

import (
	"math"

	"pengine/internal/core"
)

// Config holds the tunables for a particle world.
type Config struct {
	Bounds         core.Rect
	BatchCap       int
	TickRate       int
	Workers        int // 0 selects runtime.NumCPU()
	MaxSpawnSpeed  float64
	SpawnPerBurst  int
	FieldOrigin    core.Vec2
	FieldIntensity float64
	Seed           int64
}

// DefaultConfig returns the reference configuration: an 800×600 world
// ticking at 60 Hz with one attractive field at its center.
func DefaultConfig() Config {
	return Config{
		Bounds:         core.Rect{X: 0, Y: 0, W: 800, H: 600},
		BatchCap:       1000,
		TickRate:       60,
		MaxSpawnSpeed:  30,
		SpawnPerBurst:  100,
		FieldOrigin:    core.Vec2{X: 400, Y: 300},
		FieldIntensity: 500,
		Seed:           42,
	}
}

// World owns the particle batches, the force fields and the bounds that
// particles must stay inside. The batch collection grows append-only: a
// batch that drains to zero population stays allocated, so an in-flight
// partition never sees the collection change under it.
//
// Spawning, reading batches and mutating fields are only valid between
// engine passes; the engine's barrier is the sole ordering mechanism.
type World struct {
	cfg     Config
	bounds  core.Rect
	batches []*Batch
	fields  []Field
	alive   int
	rng     *core.RNG
}

// NewWithConfig returns a world configured from the provided options. A
// non-zero FieldIntensity installs the configured default field.
func NewWithConfig(cfg Config) *World {
	if cfg.BatchCap <= 0 {
		cfg.BatchCap = DefaultConfig().BatchCap
	}
	w := &World{
		cfg:    cfg,
		bounds: cfg.Bounds,
		rng:    core.NewRNG(cfg.Seed),
	}
	if cfg.FieldIntensity != 0 {
		w.fields = append(w.fields, Field{Origin: cfg.FieldOrigin, Intensity: cfg.FieldIntensity})
	}
	return w
}

// New returns a world with the reference configuration.
func New() *World { return NewWithConfig(DefaultConfig()) }

// Bounds returns the simulation bounds.
func (w *World) Bounds() core.Rect { return w.bounds }

// Batches exposes the particle batches for rendering and inspection.
func (w *World) Batches() []*Batch { return w.batches }

// Fields returns the force fields applied each tick.
func (w *World) Fields() []Field { return w.fields }

// Alive returns the number of live particles across all batches.
func (w *World) Alive() int { return w.alive }

// AddField installs an additional force field.
func (w *World) AddField(f Field) { w.fields = append(w.fields, f) }

// SetFields replaces the force fields.
func (w *World) SetFields(fields []Field) { w.fields = fields }

// Spawn appends one particle with the given position and initial velocity.
// If the last batch is full, or no batch exists yet, a fresh batch is
// appended first, so spawning always succeeds.
func (w *World) Spawn(pos, vel core.Vec2) {
	last := len(w.batches) - 1
	if last < 0 || w.batches[last].full() {
		w.batches = append(w.batches, newBatch(w.cfg.BatchCap))
		last++
	}
	w.batches[last].add(pos, vel)
	w.alive++
}

// SpawnBurst spawns SpawnPerBurst particles at origin, each launched at the
// configured speed in a uniformly random direction (negative Y is up, as on
// screen).
func (w *World) SpawnBurst(origin core.Vec2) {
	for i := 0; i < w.cfg.SpawnPerBurst; i++ {
		a := w.rng.Angle()
		vel := core.Vec2{
			X: w.cfg.MaxSpawnSpeed * math.Cos(a),
			Y: -w.cfg.MaxSpawnSpeed * math.Sin(a),
		}
		w.Spawn(origin, vel)
	}
}

// Reset drops every particle and reseeds the random source. A seed of zero
// falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.batches = nil
	w.alive = 0
	w.rng = core.NewRNG(seed)
}
