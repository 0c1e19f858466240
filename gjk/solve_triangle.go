package gjk

import "github.com/go-gl/mathgl/mgl64"

// edgeWeights computes the pair (u,v) for the edge X→Y used throughout the
// triangle and tetrahedron solvers: u is X's contribution, v is Y's.
func edgeWeights(q, x, y mgl64.Vec3) (u, v float64) {
	u = q.Sub(y).Dot(x.Sub(y))
	v = q.Sub(x).Dot(y.Sub(x))
	return
}

// SolveTriangle reduces a 3-vertex Simplex (A,B,C, A newest) to the
// vertex, edge, or face region closest to q. It implements the seven
// Voronoi regions in first-match-wins order: vertex, edge,
// interior.
func SolveTriangle(s *Simplex, q mgl64.Vec3) (degenerate bool) {
	a := s.Verts[2]
	b := s.Verts[1]
	c := s.Verts[0]

	ab := b.Point.Sub(a.Point)
	ac := c.Point.Sub(a.Point)
	n := ab.Cross(ac)
	nn := n.Dot(n)

	if nn < degenerateLenSqr {
		// Collinear: fall back to the line through the two most recent
		// points (C, the oldest, is dropped).
		s.keep(b, a)
		SolveLine(s, q)
		return true
	}

	uAB, vAB := edgeWeights(q, a.Point, b.Point)
	uBC, vBC := edgeWeights(q, b.Point, c.Point)
	uCA, vCA := edgeWeights(q, c.Point, a.Point)

	// Vertex regions.
	if vAB <= 0 && uCA <= 0 {
		a.Weight = 1
		s.keep(a)
		s.Divisor = 1
		return false
	}
	if vBC <= 0 && uAB <= 0 {
		b.Weight = 1
		s.keep(b)
		s.Divisor = 1
		return false
	}
	if vCA <= 0 && uBC <= 0 {
		c.Weight = 1
		s.keep(c)
		s.Divisor = 1
		return false
	}

	bq := b.Point.Sub(q)
	cq := c.Point.Sub(q)
	aq := a.Point.Sub(q)
	uABC := bq.Cross(cq).Dot(n)
	vABC := cq.Cross(aq).Dot(n)
	wABC := aq.Cross(bq).Dot(n)

	// Edge regions: the third barycentric scalar must have the opposite
	// sign from the face area to confirm q projects onto the edge.
	if uAB > 0 && vAB > 0 && sameSign(wABC, nn) == false {
		a.Weight = uAB
		b.Weight = vAB
		s.keep(a, b)
		s.Divisor = ab.Dot(ab)
		return false
	}
	if uBC > 0 && vBC > 0 && sameSign(uABC, nn) == false {
		b.Weight = uBC
		c.Weight = vBC
		s.keep(b, c)
		s.Divisor = b.Point.Sub(c.Point).Dot(b.Point.Sub(c.Point))
		return false
	}
	if uCA > 0 && vCA > 0 && sameSign(vABC, nn) == false {
		c.Weight = uCA
		a.Weight = vCA
		s.keep(c, a)
		s.Divisor = c.Point.Sub(a.Point).Dot(c.Point.Sub(a.Point))
		return false
	}

	// Interior: all three scalars share the sign of the face area.
	a.Weight = uABC
	b.Weight = vABC
	c.Weight = wABC
	s.keep(a, b, c)
	s.Divisor = nn
	return false
}

func sameSign(x, reference float64) bool {
	return (x >= 0) == (reference >= 0)
}
