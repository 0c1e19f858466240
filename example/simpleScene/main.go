package main

import (
	"fmt"

	feather "github.com/talusphys/convex"
	"github.com/talusphys/convex/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// setupScene builds a ground slab and a tilted cube dropped above it.
func setupScene() (*feather.World, *actor.RigidBody, *actor.RigidBody) {
	world := feather.NewWorld(mgl64.Vec3{0, -9.81, 0}, 4, 2.0, 64)

	groundTransform := actor.NewTransform()
	groundBody := actor.NewRigidBody(groundTransform, actor.NewSlab(50, 0.5, 50), actor.BodyTypeStatic, 0.0)
	world.AddBody(groundBody)

	cubeTransform := actor.Transform{
		Position: mgl64.Vec3{0, 5, 0},
		Rotation: mgl64.QuatRotate(70.0, mgl64.Vec3{0, 0, 1}),
	}
	cubeBody := actor.NewRigidBody(cubeTransform, actor.NewBox(mgl64.Vec3{0.5, 0.5, 0.5}), actor.BodyTypeDynamic, 1.0)
	cubeBody.Material.Restitution = 0.4
	world.AddBody(cubeBody)

	return world, groundBody, cubeBody
}

func main() {
	world, ground, cube := setupScene()

	world.Events.Subscribe(feather.COLLISION_ENTER, func(event feather.Event) {
		e := event.(feather.CollisionEnterEvent)
		fmt.Printf("collision enter: %p <-> %p\n", e.BodyA, e.BodyB)
	})

	const dt = 1.0 / 60.0
	const steps = 180

	for step := 0; step < steps; step++ {
		world.Step(dt)

		if step%30 == 0 {
			fmt.Printf("step %3d  cube position=%v velocity=%v\n", step, cube.Transform.Position, cube.Velocity)
		}
	}

	fmt.Printf("ground position=%v (static, unaffected)\n", ground.Transform.Position)
}
