package gjk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SupportOracle is the contract a shape must satisfy to take part in GJK
// and EPA: given a world-space direction, return the index of the vertex
// that maximises the dot product with that direction, and that vertex's
// world-space position. Ties must be broken deterministically (smaller
// index wins) so duplicate-support detection in the iteration driver is
// reliable.
type SupportOracle interface {
	Support(direction mgl64.Vec3) (index int, world mgl64.Vec3)
}

// Vertex is a point of the Minkowski difference A⊖B, annotated with the
// identity of the support pair that produced it and, once a sub-simplex
// solver has run, its barycentric weight.
type Vertex struct {
	IndexA, IndexB int
	WorldA, WorldB mgl64.Vec3
	Point          mgl64.Vec3
	Weight         float64
}

// MinkowskiSupport queries both oracles and builds the Vertex they jointly
// produce. For any direction d, d·Point is the signed support width of
// A⊖B along d; a negative value proves A and B do not intersect.
//
// Panics with ErrNonFiniteDirection if direction carries a NaN or
// infinite component — a caller bug, not a degenerate-geometry outcome.
func MinkowskiSupport(a, b SupportOracle, direction mgl64.Vec3) Vertex {
	if !isFiniteVec(direction) {
		panic(ErrNonFiniteDirection)
	}

	indexA, worldA := a.Support(direction)
	indexB, worldB := b.Support(direction.Mul(-1))

	return Vertex{
		IndexA: indexA,
		IndexB: indexB,
		WorldA: worldA,
		WorldB: worldB,
		Point:  worldA.Sub(worldB),
	}
}

func isFiniteVec(v mgl64.Vec3) bool {
	return !math.IsNaN(v.X()) && !math.IsInf(v.X(), 0) &&
		!math.IsNaN(v.Y()) && !math.IsInf(v.Y(), 0) &&
		!math.IsNaN(v.Z()) && !math.IsInf(v.Z(), 0)
}
