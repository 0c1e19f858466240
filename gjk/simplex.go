package gjk

import "github.com/go-gl/mathgl/mgl64"

// Simplex is a fixed-capacity, stack-allocatable set of 1-4 Vertex values
// plus the divisor that normalises their Weight into barycentric
// coordinates. By convention the most recently appended vertex always
// occupies Verts[Count-1]; the sub-simplex solvers read that slot to find
// the vertex that triggered this solve.
type Simplex struct {
	Verts   [4]Vertex
	Count   int
	Divisor float64
}

// Append adds v as the newest vertex. The caller must ensure Count < 4.
func (s *Simplex) Append(v Vertex) {
	s.Verts[s.Count] = v
	s.Count++
}

// HasSupportPair reports whether any retained vertex already carries the
// given support-pair identity.
func (s *Simplex) HasSupportPair(indexA, indexB int) bool {
	for i := 0; i < s.Count; i++ {
		if s.Verts[i].IndexA == indexA && s.Verts[i].IndexB == indexB {
			return true
		}
	}
	return false
}

// keep replaces the retained set with exactly the given vertices, in
// order, setting Count accordingly. Weights are left untouched — callers
// set Weight/Divisor themselves once the feature is chosen.
func (s *Simplex) keep(verts ...Vertex) {
	for i, v := range verts {
		s.Verts[i] = v
	}
	s.Count = len(verts)
}

// ClosestPoint returns the point of the simplex's retained feature
// closest to the query the last solver pass was run against: the
// divisor-normalised weighted sum of the retained vertices' Minkowski
// points. Valid only for Count ∈ {1,2,3}, after a Solve* call or on the
// 1-vertex simplex NewDriver seeds with full weight.
func (s *Simplex) ClosestPoint() mgl64.Vec3 {
	if s.Divisor == 0 {
		return mgl64.Vec3{}
	}
	sum := mgl64.Vec3{}
	for i := 0; i < s.Count; i++ {
		sum = sum.Add(s.Verts[i].Point.Mul(s.Verts[i].Weight))
	}
	return sum.Mul(1.0 / s.Divisor)
}

// WitnessPoints reconstructs the pair of world-space points on A and B
// that realise the simplex's closest point, by applying the same
// barycentric combination to each retained vertex's WorldA/WorldB. This
// is the disjoint-case witness formula.
func (s *Simplex) WitnessPoints() (worldA, worldB mgl64.Vec3) {
	if s.Divisor == 0 {
		return
	}
	for i := 0; i < s.Count; i++ {
		w := s.Verts[i].Weight
		worldA = worldA.Add(s.Verts[i].WorldA.Mul(w))
		worldB = worldB.Add(s.Verts[i].WorldB.Mul(w))
	}
	inv := 1.0 / s.Divisor
	return worldA.Mul(inv), worldB.Mul(inv)
}
