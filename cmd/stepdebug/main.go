// Command stepdebug drives convex.Session one iteration at a time and
// prints the simplex or polytope state after every step, for visualising
// how GJK and EPA converge on a given pair of shapes.
package main

import (
	"flag"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/actor"
	"github.com/talusphys/convex/convex"
)

func main() {
	gap := flag.Float64("gap", 0.3, "overlap (negative) or separation (positive) along X between two unit boxes")
	flag.Parse()

	a := actor.NewRigidBody(actor.NewTransform(), actor.NewBox(mgl64.Vec3{0.5, 0.5, 0.5}), actor.BodyTypeDynamic, 1.0)
	bTransform := actor.Transform{Position: mgl64.Vec3{1 + *gap, 0, 0}, Rotation: mgl64.QuatIdent()}
	b := actor.NewRigidBody(bTransform, actor.NewBox(mgl64.Vec3{0.5, 0.5, 0.5}), actor.BodyTypeDynamic, 1.0)

	session := convex.NewSession(a, b, convex.DefaultConfig())

	fmt.Println("phase GJK")
	for iteration := 0; session.Phase == convex.PhaseGJK; iteration++ {
		result := session.StepDetect()
		fmt.Printf("  step %d: simplex count=%d result=%v\n", iteration, session.GJK.Simplex.Count, result)
	}

	if session.Phase == convex.PhaseEPA {
		fmt.Println("phase EPA")
		for session.Phase == convex.PhaseEPA {
			result := session.StepExpand()
			fmt.Printf("  faces=%d result=%v\n", len(session.EPA.Polytope.Faces), result)
		}
	}

	if session.Err != nil {
		fmt.Printf("degenerate: %v\n", session.Err)
		return
	}

	switch session.Result.Outcome {
	case convex.Disjoint:
		fmt.Printf("disjoint: distance=%.6f witnessA=%v witnessB=%v iterations=%d\n",
			session.Result.Distance, session.Result.WitnessA, session.Result.WitnessB, session.Result.Iterations)
	case convex.Overlap:
		fmt.Printf("overlap: depth=%.6f normal=%v contactA=%v contactB=%v iterations=%d\n",
			session.Result.Depth, session.Result.Normal, session.Result.ContactA, session.Result.ContactB, session.Result.Iterations)
	}
}

