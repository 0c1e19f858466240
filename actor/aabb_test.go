package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{2, 2, 2}}
	c := AABB{Min: mgl64.Vec3{5, 5, 5}, Max: mgl64.Vec3{6, 6, 6}}

	if !a.Overlaps(b) {
		t.Fatal("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Fatal("expected a and c to not overlap")
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	if !box.ContainsPoint(mgl64.Vec3{0, 0, 0}) {
		t.Fatal("origin should be inside the box")
	}
	if box.ContainsPoint(mgl64.Vec3{2, 0, 0}) {
		t.Fatal("point outside X range should not be contained")
	}
}

func TestComputeAABBTracksRotatedBox(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 1, 1})
	transform := Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1}),
	}
	box.ComputeAABB(transform)
	aabb := box.GetAABB()

	// A 45-degree rotation about Z grows the X/Y extent of a unit box
	// past its unrotated half-extent.
	if aabb.Max.X() <= 1.0 {
		t.Fatalf("rotated box AABB X max = %v, want > 1.0", aabb.Max.X())
	}
}
