package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSupportTransformsBetweenLocalAndWorldSpace(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 1, 1})
	body := NewRigidBody(Transform{
		Position: mgl64.Vec3{10, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}, box, BodyTypeDynamic, 1.0)

	// Direction (1,0,0) ties across every +X corner; the lowest-index one,
	// local (1,-1,-1), wins.
	_, world := body.Support(mgl64.Vec3{1, 0, 0})
	if want := (mgl64.Vec3{11, -1, -1}); world != want {
		t.Fatalf("Support world point = %v, want %v", world, want)
	}
}

func TestSupportIndexInRangeUnderRotation(t *testing.T) {
	box := NewBox(mgl64.Vec3{1, 1, 1})
	body := NewRigidBody(Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatRotate(45, mgl64.Vec3{0, 1, 0}),
	}, box, BodyTypeDynamic, 1.0)

	index, _ := body.Support(mgl64.Vec3{1, 1, 1})
	if index < 0 || index >= len(box.Vertices) {
		t.Fatalf("Support returned out-of-range index %d", index)
	}
}

func TestStaticBodyHasInfiniteMassAndZeroInverseInertia(t *testing.T) {
	body := NewRigidBody(NewTransform(), NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeStatic, 1.0)

	if !isInf(body.Material.GetMass()) {
		t.Fatalf("static body mass = %v, want +Inf", body.Material.GetMass())
	}
	if body.GetInverseInertiaWorld() != (mgl64.Mat3{}) {
		t.Fatalf("static body inverse inertia should be zero, got %v", body.GetInverseInertiaWorld())
	}
}

func isInf(f float64) bool {
	return f > 1e300
}

func TestIntegrateAdvancesDynamicBodyUnderGravity(t *testing.T) {
	body := NewRigidBody(NewTransform(), NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeDynamic, 1.0)

	body.Integrate(1.0/60.0, mgl64.Vec3{0, -9.81, 0})

	if body.Velocity.Y() >= 0 {
		t.Fatalf("expected downward velocity after one gravity step, got %v", body.Velocity)
	}
	if body.Transform.Position.Y() >= 0 {
		t.Fatalf("expected position to drop after one gravity step, got %v", body.Transform.Position)
	}
}

func TestIntegrateSkipsStaticAndSleepingBodies(t *testing.T) {
	staticBody := NewRigidBody(NewTransform(), NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeStatic, 0.0)
	staticBody.Integrate(1.0/60.0, mgl64.Vec3{0, -9.81, 0})
	if staticBody.Transform.Position != (mgl64.Vec3{}) {
		t.Fatalf("static body moved: %v", staticBody.Transform.Position)
	}

	sleeping := NewRigidBody(NewTransform(), NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeDynamic, 1.0)
	sleeping.Sleep()
	sleeping.Integrate(1.0/60.0, mgl64.Vec3{0, -9.81, 0})
	if sleeping.Transform.Position != (mgl64.Vec3{}) {
		t.Fatalf("sleeping body moved: %v", sleeping.Transform.Position)
	}
}

func TestPositionHintMatchesTransform(t *testing.T) {
	body := NewRigidBody(Transform{Position: mgl64.Vec3{3, 4, 5}, Rotation: mgl64.QuatIdent()}, NewBox(mgl64.Vec3{1, 1, 1}), BodyTypeDynamic, 1.0)
	if body.Position() != (mgl64.Vec3{3, 4, 5}) {
		t.Fatalf("Position() = %v, want {3,4,5}", body.Position())
	}
}
