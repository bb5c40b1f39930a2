package sim

import "pengine/internal/core"

// minR2 is the floor applied to the squared distance between a particle and
// a field origin, bounding the force near the singularity at r = 0.
const minR2 = 1e-9

// Field is a point-source radial force field. Positive intensity attracts
// particles toward the origin, negative intensity repels them. Fields must
// not be mutated while an engine pass is in flight.
type Field struct {
	Origin    core.Vec2
	Intensity float64
}

// ForceAt returns the field's contribution at point p. The magnitude falls
// off with the inverse of the distance, not its square:
//
//	force = r/|r|² · intensity, with r = origin − p
func (f Field) ForceAt(p core.Vec2) core.Vec2 {
	r := f.Origin.Sub(p)
	r2 := r.LenSq()
	if r2 < minR2 {
		r2 = minR2
	}
	return r.Mul(f.Intensity / r2)
}
