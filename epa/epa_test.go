package epa

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/gjk"
)

type cloudOracle struct {
	points []mgl64.Vec3
}

func (c cloudOracle) Support(direction mgl64.Vec3) (int, mgl64.Vec3) {
	best := 0
	bestDot := c.points[0].Dot(direction)
	for i := 1; i < len(c.points); i++ {
		dot := c.points[i].Dot(direction)
		if dot > bestDot {
			bestDot = dot
			best = i
		}
	}
	return best, c.points[best]
}

func unitCube(center mgl64.Vec3) cloudOracle {
	signs := [8][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	}
	points := make([]mgl64.Vec3, 8)
	for i, s := range signs {
		points[i] = mgl64.Vec3{s[0]*0.5 + center.X(), s[1]*0.5 + center.Y(), s[2]*0.5 + center.Z()}
	}
	return cloudOracle{points: points}
}

func TestDetectConvergesOnOverlappingCubes(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{0.7, 0, 0})

	simplex, step := gjk.Detect(a, b, mgl64.Vec3{1, 0, 0}, gjk.DefaultConfig())
	if step != gjk.StepOverlap {
		t.Fatalf("GJK result = %v, want StepOverlap", step)
	}

	expander, result := Detect(simplex, a, b, DefaultConfig())
	if result != StepConverged {
		t.Fatalf("EPA result = %v, want StepConverged", result)
	}

	wantDepth := 0.3
	if diff := math.Abs(expander.Depth - wantDepth); diff > 0.05 {
		t.Fatalf("penetration depth = %v, want ~%v", expander.Depth, wantDepth)
	}

	if dot := expander.Normal.Dot(mgl64.Vec3{1, 0, 0}); math.Abs(math.Abs(dot)-1) > 0.05 {
		t.Fatalf("contact normal %v should be near +/-X axis", expander.Normal)
	}
}

func TestContactPointsLieNearBothHulls(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{0.7, 0, 0})

	simplex, _ := gjk.Detect(a, b, mgl64.Vec3{1, 0, 0}, gjk.DefaultConfig())
	expander, result := Detect(simplex, a, b, DefaultConfig())
	if result != StepConverged {
		t.Fatalf("EPA result = %v, want StepConverged", result)
	}

	contactA, contactB := expander.ContactPoints()
	if contactA.X() < -0.5 || contactA.X() > 0.5 {
		t.Fatalf("contact on A out of hull bounds: %v", contactA)
	}
	if contactB.X() < 0.2 || contactB.X() > 1.2 {
		t.Fatalf("contact on B out of hull bounds: %v", contactB)
	}
}

func TestNewPolytopeRejectsNonTetrahedralSimplex(t *testing.T) {
	simplex := gjk.Simplex{}
	simplex.Append(gjk.Vertex{Point: mgl64.Vec3{0, 0, 0}})

	_, ok := NewPolytope(simplex)
	if ok {
		t.Fatal("expected NewPolytope to reject a simplex with fewer than 4 vertices")
	}
}
