package gjk

import "github.com/go-gl/mathgl/mgl64"

// degenerateLenSqr is the squared-length threshold below which a feature
// (edge, triangle normal, tetrahedron face normal) is treated as
// degenerate rather than solved directly.
const degenerateLenSqr = 1e-10

// SolveLine reduces a 2-vertex Simplex to the feature (vertex A, vertex B,
// or the full edge) closest to q, writing Weight on every retained vertex
// and Divisor on the Simplex. A is the most recently appended vertex
// (Verts[1]); B is Verts[0].
func SolveLine(s *Simplex, q mgl64.Vec3) (degenerate bool) {
	a := s.Verts[1]
	b := s.Verts[0]

	ab := b.Point.Sub(a.Point)
	if ab.Dot(ab) < degenerateLenSqr {
		// Coincident support points: keep the newest and signal
		// degeneracy so the driver can fall back to a lower dimension.
		a.Weight = 1
		s.keep(a)
		s.Divisor = 1
		return true
	}

	u := q.Sub(b.Point).Dot(a.Point.Sub(b.Point))
	v := q.Sub(a.Point).Dot(b.Point.Sub(a.Point))

	switch {
	case v <= 0:
		a.Weight = 1
		s.keep(a)
		s.Divisor = 1
	case u <= 0:
		b.Weight = 1
		s.keep(b)
		s.Divisor = 1
	default:
		a.Weight = u
		b.Weight = v
		s.keep(a, b)
		s.Divisor = ab.Dot(ab)
	}
	return false
}
