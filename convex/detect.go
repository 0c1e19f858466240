package convex

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/epa"
	"github.com/talusphys/convex/gjk"
)

// axisProbes are fallback search directions used to complete a GJK
// terminal simplex that reports overlap without reaching four vertices —
// the origin landed exactly on a lower-dimensional feature (a simplex
// vertex or edge), which DirectionEpsilon in gjk.Driver treats as overlap
// on the spot. EPA needs a full tetrahedron to seed its polytope, so
// Detect probes a handful of fixed axes to grow the simplex before
// handing it to EPA.
var axisProbes = []mgl64.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func completeSimplex(s *gjk.Simplex, a, b gjk.SupportOracle) bool {
	for _, axis := range axisProbes {
		if s.Count == 4 {
			break
		}
		v := gjk.MinkowskiSupport(a, b, axis)
		if !s.HasSupportPair(v.IndexA, v.IndexB) {
			s.Append(v)
		}
	}
	return s.Count == 4
}

func initialDirection(a, b gjk.SupportOracle) mgl64.Vec3 {
	hintA, okA := a.(PositionHint)
	hintB, okB := b.(PositionHint)
	if okA && okB {
		return hintB.Position().Sub(hintA.Position())
	}
	return mgl64.Vec3{}
}

// Detect runs GJK to completion and, if the shapes overlap, follows with
// EPA, returning a unified Result.
func Detect(a, b gjk.SupportOracle, cfg Config) (Result, error) {
	driver := gjk.NewDriver(a, b, initialDirection(a, b), cfg.GJK)
	step := gjk.StepDegenerate
	for i := 0; i < cfg.GJK.MaxIterations; i++ {
		step = driver.Step()
		if step != gjk.StepContinue {
			break
		}
	}
	simplex := driver.Simplex
	iterations := driver.Iterations

	switch step {
	case gjk.StepDegenerate:
		return Result{Outcome: Degenerate, Iterations: iterations}, ErrDegenerateInput

	case gjk.StepNoOverlap:
		witnessA, witnessB := simplex.WitnessPoints()
		return Result{
			Outcome:    Disjoint,
			Distance:   simplex.ClosestPoint().Len(),
			WitnessA:   witnessA,
			WitnessB:   witnessB,
			Iterations: iterations,
		}, nil

	case gjk.StepOverlap:
		if simplex.Count != 4 && !completeSimplex(&simplex, a, b) {
			return Result{Outcome: Degenerate, Iterations: iterations}, ErrDegenerateInput
		}

		expander, result := epa.Detect(simplex, a, b, cfg.EPA)
		if result != epa.StepConverged {
			return Result{Outcome: Degenerate, Iterations: iterations}, ErrDegenerateInput
		}

		contactA, contactB := expander.ContactPoints()
		return Result{
			Outcome:    Overlap,
			Normal:     expander.Normal,
			Depth:      expander.Depth,
			ContactA:   contactA,
			ContactB:   contactB,
			Iterations: iterations,
		}, nil

	default:
		return Result{Outcome: Degenerate, Iterations: iterations}, ErrDegenerateInput
	}
}
