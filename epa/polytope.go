package epa

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/gjk"
)

// minFaceDistance is the minimum plane distance EPA trusts; faces closer
// to (or behind) the origin are treated as degenerate construction noise.
const minFaceDistance = 1e-4

// Face is a triangular face of the polytope: three indices into the
// owning Polytope's Verts, an outward unit normal, and the non-negative
// distance from the origin to the face plane.
type Face struct {
	A, B, C  int
	Normal   mgl64.Vec3
	Distance float64
}

// Polytope is the closed triangular manifold EPA expands. It is created
// only from a 4-vertex GJK simplex and owned exclusively by the Expander
// until it yields a result.
type Polytope struct {
	Verts []gjk.Vertex
	Faces []Face
}

// edgeKey identifies an undirected edge between two polytope vertex
// indices for boundary-edge counting during horizon rebuilding.
type edgeKey struct{ lo, hi int }

func makeEdgeKey(i, j int) edgeKey {
	if i > j {
		i, j = j, i
	}
	return edgeKey{i, j}
}

// NewPolytope builds the initial polytope from GJK's terminal tetrahedron.
// Faces are oriented so every normal points away from the origin,
// matching a fresh tetrahedron's four outward faces.
func NewPolytope(simplex gjk.Simplex) (*Polytope, bool) {
	if simplex.Count != 4 {
		return nil, false
	}

	p := &Polytope{
		Verts: append([]gjk.Vertex{}, simplex.Verts[:4]...),
		Faces: make([]Face, 0, 4),
	}

	type combo struct{ a, b, c, opposite int }
	combos := []combo{
		{0, 1, 2, 3},
		{0, 2, 3, 1},
		{0, 3, 1, 2},
		{1, 3, 2, 0},
	}

	for _, cm := range combos {
		face, ok := p.buildFace(cm.a, cm.b, cm.c, cm.opposite)
		if !ok {
			return p, false
		}
		p.Faces = append(p.Faces, face)
	}
	return p, true
}

// buildFace computes a Face from three vertex indices, orienting its
// normal away from the vertex at opposite. Returns ok=false on a
// degenerate (zero-area) triangle.
func (p *Polytope) buildFace(a, b, c, opposite int) (Face, bool) {
	pa, pb, pc := p.Verts[a].Point, p.Verts[b].Point, p.Verts[c].Point

	normal := pb.Sub(pa).Cross(pc.Sub(pa))
	length := normal.Len()
	if length < 1e-10 {
		return Face{}, false
	}
	normal = normal.Mul(1.0 / length)

	if normal.Dot(p.Verts[opposite].Point.Sub(pa)) > 0 {
		normal = normal.Mul(-1)
	}

	distance := pa.Dot(normal)
	if distance < 0 {
		normal = normal.Mul(-1)
		distance = -distance
	}
	if distance < minFaceDistance {
		distance = minFaceDistance
	}

	return Face{A: a, B: b, C: c, Normal: normal, Distance: distance}, true
}

// closestFaceIndex returns the index of the face nearest the origin, or
// -1 if the polytope has no faces.
func (p *Polytope) closestFaceIndex() int {
	if len(p.Faces) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(p.Faces); i++ {
		if p.Faces[i].Distance < p.Faces[best].Distance {
			best = i
		}
	}
	return best
}

// insert expands the polytope by adding vertex v, which must have already
// been confirmed to improve on the closest face. It returns false if the
// horizon is numerically inconsistent (an edge was seen more than twice).
func (p *Polytope) insert(v gjk.Vertex) bool {
	newIndex := len(p.Verts)
	p.Verts = append(p.Verts, v)

	visible := make([]int, 0, len(p.Faces)/2+1)
	for i, f := range p.Faces {
		if f.Normal.Dot(v.Point.Sub(p.Verts[f.A].Point)) > 0 {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 || len(visible) >= len(p.Faces) {
		return false
	}

	edgeCount := map[edgeKey]int{}
	type directedEdge struct{ from, to int }
	var boundary []directedEdge

	for _, fi := range visible {
		f := p.Faces[fi]
		edges := [3][2]int{{f.A, f.B}, {f.B, f.C}, {f.C, f.A}}
		for _, e := range edges {
			edgeCount[makeEdgeKey(e[0], e[1])]++
		}
	}
	for _, fi := range visible {
		f := p.Faces[fi]
		edges := [3][2]int{{f.A, f.B}, {f.B, f.C}, {f.C, f.A}}
		for _, e := range edges {
			if edgeCount[makeEdgeKey(e[0], e[1])] > 2 {
				return false
			}
			if edgeCount[makeEdgeKey(e[0], e[1])] == 1 {
				boundary = append(boundary, directedEdge{e[0], e[1]})
			}
		}
	}

	keep := make([]Face, 0, len(p.Faces)-len(visible))
	visibleSet := map[int]bool{}
	for _, fi := range visible {
		visibleSet[fi] = true
	}
	for i, f := range p.Faces {
		if !visibleSet[i] {
			keep = append(keep, f)
		}
	}
	p.Faces = keep

	centroid := p.centroid()
	for _, e := range boundary {
		face, ok := p.buildFaceAgainst(e.from, e.to, newIndex, centroid)
		if !ok {
			continue
		}
		p.Faces = append(p.Faces, face)
	}

	return len(p.Faces) > 0
}

// buildFaceAgainst builds a face (a,b,newVertex) whose normal is oriented
// away from the reference point (the polytope centroid).
func (p *Polytope) buildFaceAgainst(a, b, newVertex int, reference mgl64.Vec3) (Face, bool) {
	pa, pb, pn := p.Verts[a].Point, p.Verts[b].Point, p.Verts[newVertex].Point

	normal := pb.Sub(pa).Cross(pn.Sub(pa))
	length := normal.Len()
	if length < 1e-10 {
		return Face{}, false
	}
	normal = normal.Mul(1.0 / length)

	if normal.Dot(reference.Sub(pa)) > 0 {
		normal = normal.Mul(-1)
	}

	distance := pa.Dot(normal)
	if distance < 0 {
		normal = normal.Mul(-1)
		distance = -distance
	}
	if distance < minFaceDistance {
		distance = minFaceDistance
	}

	return Face{A: a, B: b, C: newVertex, Normal: normal, Distance: distance}, true
}

func (p *Polytope) centroid() mgl64.Vec3 {
	sum := mgl64.Vec3{}
	for _, v := range p.Verts {
		sum = sum.Add(v.Point)
	}
	return sum.Mul(1.0 / float64(len(p.Verts)))
}
