package sim

import "pengine/internal/core"

// Batch stores up to its capacity of particles as parallel columns. Live
// particles occupy indices [0, Len()) with no gaps; slots past the
// population are stale and must not be read.
type Batch struct {
	pos []core.Vec2
	vel []core.Vec2
	acc []core.Vec2
	n   int
}

func newBatch(capacity int) *Batch {
	return &Batch{
		pos: make([]core.Vec2, capacity),
		vel: make([]core.Vec2, capacity),
		acc: make([]core.Vec2, capacity),
	}
}

// Len returns the number of live particles.
func (b *Batch) Len() int { return b.n }

// Cap returns the slot capacity of the batch.
func (b *Batch) Cap() int { return len(b.pos) }

func (b *Batch) full() bool { return b.n == len(b.pos) }

// Positions exposes the live position column. The returned slice is only
// valid between engine passes.
func (b *Batch) Positions() []core.Vec2 { return b.pos[:b.n] }

// Velocities exposes the live velocity column.
func (b *Batch) Velocities() []core.Vec2 { return b.vel[:b.n] }

// Accelerations exposes the live acceleration column.
func (b *Batch) Accelerations() []core.Vec2 { return b.acc[:b.n] }

// add appends one particle with zero acceleration. The caller guarantees
// the batch is not full.
func (b *Batch) add(pos, vel core.Vec2) {
	b.pos[b.n] = pos
	b.vel[b.n] = vel
	b.acc[b.n] = core.Vec2{}
	b.n++
}

// removeAt deletes the particle at index i, shifting every higher live slot
// down one place so the live prefix stays contiguous and in order.
func (b *Batch) removeAt(i int) {
	b.n--
	copy(b.pos[i:b.n], b.pos[i+1:b.n+1])
	copy(b.vel[i:b.n], b.vel[i+1:b.n+1])
	copy(b.acc[i:b.n], b.acc[i+1:b.n+1])
}
