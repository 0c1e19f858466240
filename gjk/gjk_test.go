package gjk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// cloudOracle is a minimal SupportOracle over a fixed point cloud, enough
// to exercise the driver without pulling in actor's transform machinery.
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

func TestDetectDisjointCubes(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{5, 0, 0})

	simplex, result := Detect(a, b, mgl64.Vec3{1, 0, 0}, DefaultConfig())
	if result != StepNoOverlap {
		t.Fatalf("Detect result = %v, want StepNoOverlap", result)
	}

	distance := simplex.ClosestPoint().Len()
	if distance < 3.9 || distance > 4.1 {
		t.Fatalf("separation distance = %v, want ~4.0", distance)
	}
}

func TestDetectOverlappingCubes(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{0.3, 0, 0})

	_, result := Detect(a, b, mgl64.Vec3{1, 0, 0}, DefaultConfig())
	if result != StepOverlap {
		t.Fatalf("Detect result = %v, want StepOverlap", result)
	}
}

func TestDetectNearlyTouchingCubesDoesNotOverlap(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{1.01, 0, 0})

	simplex, result := Detect(a, b, mgl64.Vec3{1, 0, 0}, DefaultConfig())
	if result != StepNoOverlap {
		t.Fatalf("Detect result = %v, want StepNoOverlap", result)
	}
	if d := simplex.ClosestPoint().Len(); d <= 0 || d > 0.02 {
		t.Fatalf("separation distance = %v, want in (0, 0.02]", d)
	}
}

func TestDetectIsSwapSymmetric(t *testing.T) {
	a := unitCube(mgl64.Vec3{0, 0, 0})
	b := unitCube(mgl64.Vec3{5, 0, 0})

	_, resultAB := Detect(a, b, mgl64.Vec3{1, 0, 0}, DefaultConfig())
	_, resultBA := Detect(b, a, mgl64.Vec3{-1, 0, 0}, DefaultConfig())

	if resultAB != resultBA {
		t.Fatalf("swapping operands changed the outcome: %v vs %v", resultAB, resultBA)
	}
}

func TestSolveLineVertexRegion(t *testing.T) {
	s := Simplex{}
	s.Append(Vertex{Point: mgl64.Vec3{-1, 0, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{1, 0, 0}})

	degenerate := SolveLine(&s, mgl64.Vec3{5, 0, 0})
	if degenerate {
		t.Fatal("well-separated line should not be degenerate")
	}
	if s.Count != 1 || s.Verts[0].Point != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("expected reduction to the newest vertex A {1,0,0}, got %+v", s)
	}
}

func TestSolveLineEdgeRegion(t *testing.T) {
	s := Simplex{}
	s.Append(Vertex{Point: mgl64.Vec3{-1, 0, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{1, 0, 0}})

	degenerate := SolveLine(&s, mgl64.Vec3{0, 1, 0})
	if degenerate {
		t.Fatal("should not be degenerate")
	}
	if s.Count != 2 {
		t.Fatalf("expected edge retained, got count=%d", s.Count)
	}
	closest := s.ClosestPoint()
	if closest.X() > 1e-9 || closest.X() < -1e-9 {
		t.Fatalf("closest point on edge = %v, want x=0", closest)
	}
}

func TestSolveTriangleInteriorRegion(t *testing.T) {
	s := Simplex{}
	s.Append(Vertex{Point: mgl64.Vec3{-1, -1, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{1, -1, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{0, 1, 0}})

	degenerate := SolveTriangle(&s, mgl64.Vec3{0, -0.5, 1})
	if degenerate {
		t.Fatal("should not be degenerate")
	}
	if s.Count != 3 {
		t.Fatalf("expected interior region to retain all 3 vertices, got %d", s.Count)
	}
}

func TestSolveTriangleDegenerateCollinear(t *testing.T) {
	s := Simplex{}
	s.Append(Vertex{Point: mgl64.Vec3{0, 0, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{1, 0, 0}})
	s.Append(Vertex{Point: mgl64.Vec3{2, 0, 0}})

	degenerate := SolveTriangle(&s, mgl64.Vec3{1, 1, 0})
	if !degenerate {
		t.Fatal("collinear triangle should be reported degenerate")
	}
}

func TestDuplicateSupportIsDetected(t *testing.T) {
	s := Simplex{}
	s.Append(Vertex{IndexA: 2, IndexB: 5})

	if !s.HasSupportPair(2, 5) {
		t.Fatal("expected support pair (2,5) to be recognised")
	}
	if s.HasSupportPair(2, 6) {
		t.Fatal("support pair (2,6) was never added")
	}
}
