package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind distinguishes the analytic mass/inertia formula a Shape uses;
// collision queries never look at it; Support is a single, uniform
// vertex-cloud argmax regardless of Kind.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeSlab
)

// Shape is a convex vertex cloud in local space: the exact representation
// gjk.SupportOracle and epa.Polytope require, with no analytic per-kind
// support formula. Kind and the analytic fields (HalfExtents, Radius)
// exist only so ComputeMass/ComputeInertia can use the closed-form
// formulas for the shape's true geometry rather than a coarse
// vertex-cloud approximation of it.
type Shape struct {
	Kind        ShapeKind
	Vertices    []mgl64.Vec3
	HalfExtents mgl64.Vec3 // valid for ShapeBox and ShapeSlab
	Radius      float64    // valid for ShapeSphere

	aabb AABB
}

var boxCornerSigns = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
}

func boxVertices(halfExtents mgl64.Vec3) []mgl64.Vec3 {
	verts := make([]mgl64.Vec3, 8)
	for i, sign := range boxCornerSigns {
		verts[i] = mgl64.Vec3{
			sign[0] * halfExtents.X(),
			sign[1] * halfExtents.Y(),
			sign[2] * halfExtents.Z(),
		}
	}
	return verts
}

// NewBox builds an oriented box from its half-extents: 8 corner vertices,
// mass and inertia computed from the exact box formula.
func NewBox(halfExtents mgl64.Vec3) *Shape {
	return &Shape{
		Kind:        ShapeBox,
		Vertices:    boxVertices(halfExtents),
		HalfExtents: halfExtents,
	}
}

// icosahedronDirections are the 12 unit vertex directions of a regular
// icosahedron with a vertex at each Y pole and two staggered rings of
// five at latitude ±atan(1/2). Used to approximate a sphere with a finite
// vertex cloud: Support on this cloud is a convex-hull approximation of
// the true sphere, with the analytic Radius/ComputeMass/ComputeInertia
// formulas used for physical response instead of the (coarser) vertex
// hull. The poles make the hull reach the full radius along ±Y.
func icosahedronDirections() [12]mgl64.Vec3 {
	var dirs [12]mgl64.Vec3
	dirs[0] = mgl64.Vec3{0, 1, 0}
	dirs[11] = mgl64.Vec3{0, -1, 0}

	ringY := 1 / math.Sqrt(5)
	ringR := 2 / math.Sqrt(5)
	for i := 0; i < 5; i++ {
		upper := 2 * math.Pi * float64(i) / 5
		lower := upper + math.Pi/5
		dirs[1+i] = mgl64.Vec3{ringR * math.Cos(upper), ringY, ringR * math.Sin(upper)}
		dirs[6+i] = mgl64.Vec3{ringR * math.Cos(lower), -ringY, ringR * math.Sin(lower)}
	}
	return dirs
}

// NewSphereApprox builds a sphere approximated by a 12-vertex icosahedral
// hull, per the degenerate-geometry avoidance guidance: a vertex cloud
// with too few points produces unstable EPA faces, and 12 is the smallest
// regular hull with no degenerate triangles.
func NewSphereApprox(radius float64) *Shape {
	dirs := icosahedronDirections()
	verts := make([]mgl64.Vec3, len(dirs))
	for i, d := range dirs {
		verts[i] = d.Mul(radius)
	}
	return &Shape{
		Kind:     ShapeSphere,
		Vertices: verts,
		Radius:   radius,
	}
}

// NewSlab builds a thin rectangular box, the finite replacement for an
// infinite plane: a vertex cloud has no meaningful representation of an
// unbounded shape, so a slab wide enough to cover the scene stands in for
// a ground plane.
func NewSlab(halfWidth, halfHeight, halfDepth float64) *Shape {
	halfExtents := mgl64.Vec3{halfWidth, halfHeight, halfDepth}
	return &Shape{
		Kind:        ShapeSlab,
		Vertices:    boxVertices(halfExtents),
		HalfExtents: halfExtents,
	}
}

// Support scans every local-space vertex and returns the index and
// local-space position of the one that maximises the dot product with
// direction, breaking ties toward the lower index.
func (s *Shape) Support(direction mgl64.Vec3) (int, mgl64.Vec3) {
	best := 0
	bestDot := s.Vertices[0].Dot(direction)
	for i := 1; i < len(s.Vertices); i++ {
		dot := s.Vertices[i].Dot(direction)
		if dot > bestDot {
			bestDot = dot
			best = i
		}
	}
	return best, s.Vertices[best]
}

// ComputeAABB recomputes the shape's world-space AABB by transforming
// every vertex and tracking the running min/max; this works identically
// for any vertex count, so it needs no per-kind specialisation.
func (s *Shape) ComputeAABB(transform Transform) {
	worldVertex := transform.Rotation.Rotate(s.Vertices[0]).Add(transform.Position)
	min := worldVertex
	max := worldVertex

	for i := 1; i < len(s.Vertices); i++ {
		worldVertex = transform.Rotation.Rotate(s.Vertices[i]).Add(transform.Position)

		min[0] = math.Min(min[0], worldVertex[0])
		min[1] = math.Min(min[1], worldVertex[1])
		min[2] = math.Min(min[2], worldVertex[2])

		max[0] = math.Max(max[0], worldVertex[0])
		max[1] = math.Max(max[1], worldVertex[1])
		max[2] = math.Max(max[2], worldVertex[2])
	}

	s.aabb = AABB{Min: min, Max: max}
}

func (s *Shape) GetAABB() AABB {
	return s.aabb
}

// ComputeMass returns the shape's mass for the given density, using the
// exact formula for Kind rather than an approximation from Vertices.
func (s *Shape) ComputeMass(density float64) float64 {
	switch s.Kind {
	case ShapeSphere:
		volume := (4.0 / 3.0) * math.Pi * math.Pow(s.Radius, 3)
		return density * volume
	default: // ShapeBox, ShapeSlab
		volume := 8.0 * s.HalfExtents.X() * s.HalfExtents.Y() * s.HalfExtents.Z()
		return density * volume
	}
}

// ComputeInertia returns the shape's local inertia tensor for the given
// mass, using the exact formula for Kind.
func (s *Shape) ComputeInertia(mass float64) mgl64.Mat3 {
	switch s.Kind {
	case ShapeSphere:
		i := (2.0 / 5.0) * mass * s.Radius * s.Radius
		return mgl64.Mat3{
			i, 0, 0,
			0, i, 0,
			0, 0, i,
		}
	default: // ShapeBox, ShapeSlab
		x := s.HalfExtents.X() * 2
		y := s.HalfExtents.Y() * 2
		z := s.HalfExtents.Z() * 2

		factor := mass / 12.0
		ix := factor * (y*y + z*z)
		iy := factor * (x*x + z*z)
		iz := factor * (x*x + y*y)

		return mgl64.Mat3{
			ix, 0, 0,
			0, iy, 0,
			0, 0, iz,
		}
	}
}
