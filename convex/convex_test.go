package convex_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talusphys/convex/actor"
	"github.com/talusphys/convex/convex"
)

func boxBody(position mgl64.Vec3, halfExtents mgl64.Vec3) *actor.RigidBody {
	transform := actor.Transform{Position: position, Rotation: mgl64.QuatIdent()}
	return actor.NewRigidBody(transform, actor.NewBox(halfExtents), actor.BodyTypeDynamic, 1.0)
}

func TestDetectDisjointUnitCubes(t *testing.T) {
	a := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	b := boxBody(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	result, err := convex.Detect(a, b, convex.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, convex.Disjoint, result.Outcome)
	assert.InDelta(t, 4.0, result.Distance, 0.01)
}

func TestDetectOverlappingUnitCubes(t *testing.T) {
	a := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	b := boxBody(mgl64.Vec3{0.6, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	result, err := convex.Detect(a, b, convex.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, convex.Overlap, result.Outcome)
	assert.InDelta(t, 0.4, result.Depth, 0.05)
	assert.InDelta(t, 1.0, math.Abs(result.Normal.Dot(mgl64.Vec3{1, 0, 0})), 0.05)
}

func TestDetectSphereApproxAgainstSlab(t *testing.T) {
	slabTransform := actor.NewTransform()
	slab := actor.NewRigidBody(slabTransform, actor.NewSlab(10, 0.5, 10), actor.BodyTypeStatic, 0.0)

	sphereTransform := actor.Transform{Position: mgl64.Vec3{0, 1.3, 0}, Rotation: mgl64.QuatIdent()}
	sphere := actor.NewRigidBody(sphereTransform, actor.NewSphereApprox(1.0), actor.BodyTypeDynamic, 1.0)

	result, err := convex.Detect(slab, sphere, convex.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, convex.Overlap, result.Outcome)
	// Slab top is at y=0.5, sphere center at y=1.3 with radius 1.0 reaches
	// down to y=0.3, so penetration should be about 0.2.
	assert.InDelta(t, 0.2, result.Depth, 0.1)
}

func TestDetectIsTranslationInvariant(t *testing.T) {
	a1 := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	b1 := boxBody(mgl64.Vec3{0.6, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	result1, err := convex.Detect(a1, b1, convex.DefaultConfig())
	require.NoError(t, err)

	offset := mgl64.Vec3{100, -50, 25}
	a2 := boxBody(mgl64.Vec3{0, 0, 0}.Add(offset), mgl64.Vec3{0.5, 0.5, 0.5})
	b2 := boxBody(mgl64.Vec3{0.6, 0, 0}.Add(offset), mgl64.Vec3{0.5, 0.5, 0.5})
	result2, err := convex.Detect(a2, b2, convex.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, result1.Outcome, result2.Outcome)
	assert.InDelta(t, result1.Depth, result2.Depth, 1e-4)
	assert.InDelta(t, 0, result1.Normal.Sub(result2.Normal).Len(), 1e-4)
}

func TestDetectIsSwapSymmetric(t *testing.T) {
	a := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	b := boxBody(mgl64.Vec3{0.6, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	ab, err := convex.Detect(a, b, convex.DefaultConfig())
	require.NoError(t, err)
	ba, err := convex.Detect(b, a, convex.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ab.Outcome, ba.Outcome)
	assert.InDelta(t, ab.Depth, ba.Depth, 1e-4)
	// Swapping operands flips which side the normal points toward.
	assert.InDelta(t, 0, ab.Normal.Add(ba.Normal).Len(), 1e-4)
}

func TestDetectCoincidentCubesAreOverlapping(t *testing.T) {
	a := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})
	b := boxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	result, err := convex.Detect(a, b, convex.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, convex.Overlap, result.Outcome)
}
