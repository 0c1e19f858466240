package gjk

import "github.com/go-gl/mathgl/mgl64"

// Config bundles the GJK driver's tunables.
type Config struct {
	// MaxIterations caps the driver loop. Correct geometry converges well
	// within it; hitting the cap is treated as degenerate.
	MaxIterations int
	// DirectionEpsilon is the squared-magnitude threshold below which a
	// search direction counts as zero (origin on the simplex boundary).
	DirectionEpsilon float64
}

// DefaultConfig returns the driver's recommended tunables.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    32,
		DirectionEpsilon: 1e-12,
	}
}

// StepResult is the outcome of a single Driver.Step call.
type StepResult int

const (
	StepContinue StepResult = iota
	StepOverlap
	StepNoOverlap
	StepDegenerate
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "Continue"
	case StepOverlap:
		return "Overlap"
	case StepNoOverlap:
		return "NoOverlap"
	case StepDegenerate:
		return "Degenerate"
	default:
		return "Unknown"
	}
}

// Driver runs the GJK iteration loop against two Support Oracles. It is
// owned exclusively by the caller; the embedded Simplex is caller-visible
// so StepDetect-style debug tooling can inspect it between steps.
type Driver struct {
	A, B      SupportOracle
	Config    Config
	Simplex   Simplex
	direction mgl64.Vec3

	// Iterations counts completed Step calls, exposed for diagnostics and
	// the stepdebug tool.
	Iterations int
}

// NewDriver seeds the simplex with one Minkowski support in the given
// initial direction (the caller picks this — typically the vector from
// A's reference point to B's — falling back to a fixed axis when that
// vector is degenerate) and returns a Driver ready for Step.
func NewDriver(a, b SupportOracle, initialDirection mgl64.Vec3, cfg Config) *Driver {
	if initialDirection.Dot(initialDirection) < 1e-16 {
		initialDirection = mgl64.Vec3{1, 0, 0}
	}

	d := &Driver{A: a, B: b, Config: cfg}
	first := MinkowskiSupport(a, b, initialDirection)
	d.Simplex.Append(first)
	// A 1-vertex simplex is its own closest feature with full weight; no
	// Solve* call ever runs to set this, since there's nothing to reduce.
	d.Simplex.Verts[0].Weight = 1
	d.Simplex.Divisor = 1
	d.direction = first.Point.Mul(-1)
	return d
}

// Step runs exactly one GJK iteration. Callers re-invoke until
// a terminal StepResult is returned.
func (d *Driver) Step() StepResult {
	d.Iterations++

	if d.Simplex.Count == 4 {
		return StepOverlap
	}

	if d.direction.Dot(d.direction) < d.Config.DirectionEpsilon {
		return StepOverlap
	}

	candidate := MinkowskiSupport(d.A, d.B, d.direction)

	if candidate.Point.Dot(d.direction) < 0 {
		return StepNoOverlap
	}

	if d.Simplex.HasSupportPair(candidate.IndexA, candidate.IndexB) {
		return StepNoOverlap
	}

	d.Simplex.Append(candidate)

	switch d.Simplex.Count {
	case 2:
		if SolveLine(&d.Simplex, mgl64.Vec3{}) {
			return StepDegenerate
		}
	case 3:
		if SolveTriangle(&d.Simplex, mgl64.Vec3{}) {
			return StepDegenerate
		}
	case 4:
		overlap, degenerate := SolveTetrahedron(&d.Simplex, mgl64.Vec3{})
		if degenerate {
			return StepDegenerate
		}
		if overlap {
			return StepOverlap
		}
	}

	d.direction = d.Simplex.ClosestPoint().Mul(-1)
	return StepContinue
}

// Detect drives the loop to a terminal state, capping at Config.MaxIterations.
// Hitting the cap is reported as StepDegenerate.
func Detect(a, b SupportOracle, initialDirection mgl64.Vec3, cfg Config) (Simplex, StepResult) {
	driver := NewDriver(a, b, initialDirection, cfg)
	for i := 0; i < cfg.MaxIterations; i++ {
		result := driver.Step()
		if result != StepContinue {
			return driver.Simplex, result
		}
	}
	return driver.Simplex, StepDegenerate
}
