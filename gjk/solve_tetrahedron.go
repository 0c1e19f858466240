package gjk

import "github.com/go-gl/mathgl/mgl64"

// SolveTetrahedron reduces a 4-vertex Simplex (A,B,C,D, A newest) toward
// the origin query q. Because GJK only ever appends a vertex in the
// direction the previous feature pointed toward the query, the three
// faces containing A are the only faces that can face q; testing those
// three (and recursing into SolveTriangle, which itself covers the edge
// and vertex regions of whichever face is chosen) is equivalent to the
// flat 15-region enumeration and is how every production GJK
// implementation structures this test.
//
// Returns overlap=true if q lies inside all three faces (and, by the
// invariant above, inside the fourth) — the simplex contains the query
// and GJK is done. Otherwise the Simplex is reduced to the closest face's
// triangle and that triangle's solver has already set its weights.
func SolveTetrahedron(s *Simplex, q mgl64.Vec3) (overlap, degenerate bool) {
	a := s.Verts[3]
	b := s.Verts[2]
	c := s.Verts[1]
	d := s.Verts[0]

	ab := b.Point.Sub(a.Point)
	ac := c.Point.Sub(a.Point)
	ad := d.Point.Sub(a.Point)
	aq := q.Sub(a.Point)

	abc := orientOutward(ab.Cross(ac), ad)
	acd := orientOutward(ac.Cross(ad), ab)
	adb := orientOutward(ad.Cross(ab), ac)

	if abc.Dot(abc) < degenerateLenSqr || acd.Dot(acd) < degenerateLenSqr || adb.Dot(adb) < degenerateLenSqr {
		s.keep(c, b, a)
		SolveTriangle(s, q)
		return false, true
	}

	switch {
	case abc.Dot(aq) > 0:
		s.keep(c, b, a)
	case acd.Dot(aq) > 0:
		s.keep(d, c, a)
	case adb.Dot(aq) > 0:
		s.keep(b, d, a)
	default:
		return true, false
	}

	SolveTriangle(s, q)
	return false, false
}

// orientOutward flips normal so it points away from the given reference
// vector (the vertex opposite the face it was computed from).
func orientOutward(normal, towardOpposite mgl64.Vec3) mgl64.Vec3 {
	if normal.Dot(towardOpposite) > 0 {
		return normal.Mul(-1)
	}
	return normal
}
