package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxSupportPicksFarthestCorner(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 2, 3})

	index, point := box.Support(mgl64.Vec3{1, 1, 1})
	if point != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("Support(1,1,1) = %v, want {1,2,3}", point)
	}
	if box.Vertices[index] != point {
		t.Fatalf("returned index %d does not match returned point", index)
	}
}

func TestBoxSupportTieBreaksToLowerIndex(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 1, 1})

	// Direction (1,0,0) ties between every +X corner; the lowest-index
	// +X corner must win so duplicate-support detection stays reliable.
	index, _ := box.Support(mgl64.Vec3{1, 0, 0})
	for i := 0; i < index; i++ {
		if box.Vertices[i].X() > 0 {
			t.Fatalf("expected tie-break to vertex %d, got %d", i, index)
		}
	}
}

func TestSphereApproxHasTwelveVertices(t *testing.T) {
	sphere := NewSphereApprox(2.0)
	if len(sphere.Vertices) != 12 {
		t.Fatalf("icosahedral sphere approximation has %d vertices, want 12", len(sphere.Vertices))
	}
	for _, v := range sphere.Vertices {
		if got := v.Len(); got < 1.999 || got > 2.001 {
			t.Fatalf("vertex %v has length %v, want ~2.0", v, got)
		}
	}
}

func TestSlabIsFiniteBox(t *testing.T) {
	slab := NewSlab(50, 0.5, 50)
	if len(slab.Vertices) != 8 {
		t.Fatalf("slab has %d vertices, want 8", len(slab.Vertices))
	}
	slab.ComputeAABB(NewTransform())
	aabb := slab.GetAABB()
	if aabb.Max.Y()-aabb.Min.Y() != 1.0 {
		t.Fatalf("slab AABB height = %v, want 1.0", aabb.Max.Y()-aabb.Min.Y())
	}
}

func TestComputeMassMatchesAnalyticFormula(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 1, 1})
	if got, want := box.ComputeMass(2.0), 16.0; got != want {
		t.Fatalf("box mass = %v, want %v", got, want)
	}

	sphere := NewSphereApprox(1.0)
	got := sphere.ComputeMass(1.0)
	want := (4.0 / 3.0) * 3.141592653589793
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("sphere mass = %v, want ~%v", got, want)
	}
}
