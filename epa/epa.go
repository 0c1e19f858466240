package epa

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/gjk"
)

// Config bundles EPA's tunables.
type Config struct {
	// MaxIterations caps the expansion loop.
	MaxIterations int
	// Tolerance is the convergence gap: when a new support point improves
	// on the closest face's distance by less than Tolerance, EPA accepts
	// that face as converged instead of expanding further.
	Tolerance float64
}

// DefaultConfig returns EPA's recommended tunables.
func DefaultConfig() Config {
	return Config{MaxIterations: 32, Tolerance: 1e-4}
}

// StepResult is the outcome of a single Expander.Step call.
type StepResult int

const (
	StepContinue StepResult = iota
	StepConverged
	StepFailure
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "Continue"
	case StepConverged:
		return "Converged"
	case StepFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Expander drives EPA's expansion loop against a Polytope seeded from
// GJK's terminal simplex.
type Expander struct {
	A, B     gjk.SupportOracle
	Config   Config
	Polytope *Polytope

	// Result, valid once Step returns StepConverged.
	Normal           mgl64.Vec3
	Depth            float64
	FaceVerts        [3]gjk.Vertex
	BaryU, BaryV, BaryW float64
}

// NewExpander seeds an Expander from GJK's terminal 4-vertex simplex.
func NewExpander(simplex gjk.Simplex, a, b gjk.SupportOracle, cfg Config) (*Expander, bool) {
	polytope, ok := NewPolytope(simplex)
	if !ok {
		return nil, false
	}
	return &Expander{A: a, B: b, Config: cfg, Polytope: polytope}, true
}

// Step runs exactly one EPA expansion iteration.
func (e *Expander) Step() StepResult {
	idx := e.Polytope.closestFaceIndex()
	if idx < 0 {
		return StepFailure
	}
	face := e.Polytope.Faces[idx]

	candidate := gjk.MinkowskiSupport(e.A, e.B, face.Normal)

	for _, v := range e.Polytope.Verts {
		if v.IndexA == candidate.IndexA && v.IndexB == candidate.IndexB {
			return e.converge(face)
		}
	}

	s := candidate.Point.Dot(face.Normal)
	if s-face.Distance < e.Config.Tolerance {
		return e.converge(face)
	}

	previousMin := face.Distance
	if !e.Polytope.insert(candidate) {
		return StepFailure
	}

	newIdx := e.Polytope.closestFaceIndex()
	if newIdx < 0 {
		return StepFailure
	}
	if e.Polytope.Faces[newIdx].Distance < previousMin-1e-9 {
		// Face distances must be non-decreasing;
		// treat a regression as a numerical failure and emit the best
		// face found so far rather than loop on bad data.
		return e.converge(e.Polytope.Faces[newIdx])
	}

	return StepContinue
}

// converge computes the barycentric weights of the origin's projection
// onto face by delegating to gjk.SolveTriangle — the same closest-point
// machinery GJK itself uses, applied to the three face vertices with the
// origin as the query point.
func (e *Expander) converge(face Face) StepResult {
	va := e.Polytope.Verts[face.A]
	vb := e.Polytope.Verts[face.B]
	vc := e.Polytope.Verts[face.C]

	tri := gjk.Simplex{}
	tri.Append(vc)
	tri.Append(vb)
	tri.Append(va)
	gjk.SolveTriangle(&tri, mgl64.Vec3{})

	var u, v, w float64
	for i := 0; i < tri.Count; i++ {
		vert := tri.Verts[i]
		switch {
		case vert.IndexA == va.IndexA && vert.IndexB == va.IndexB:
			u = vert.Weight
		case vert.IndexA == vb.IndexA && vert.IndexB == vb.IndexB:
			v = vert.Weight
		case vert.IndexA == vc.IndexA && vert.IndexB == vc.IndexB:
			w = vert.Weight
		}
	}
	if tri.Divisor != 0 {
		u, v, w = u/tri.Divisor, v/tri.Divisor, w/tri.Divisor
	} else {
		u, v, w = 1, 0, 0
	}

	e.Normal = face.Normal
	e.Depth = face.Distance
	e.FaceVerts = [3]gjk.Vertex{va, vb, vc}
	e.BaryU, e.BaryV, e.BaryW = u, v, w
	return StepConverged
}

// Detect drives the loop to a terminal state, capping at
// Config.MaxIterations. Hitting the cap emits the current best face.
func Detect(simplex gjk.Simplex, a, b gjk.SupportOracle, cfg Config) (*Expander, StepResult) {
	expander, ok := NewExpander(simplex, a, b, cfg)
	if !ok {
		return expander, StepFailure
	}
	for i := 0; i < cfg.MaxIterations; i++ {
		result := expander.Step()
		if result != StepContinue {
			return expander, result
		}
	}
	idx := expander.Polytope.closestFaceIndex()
	if idx < 0 {
		return expander, StepFailure
	}
	expander.converge(expander.Polytope.Faces[idx])
	return expander, StepConverged
}

// ContactPoints applies the converged barycentric weights to the face
// vertices' world-space support points, yielding the witness points on A
// and B.
func (e *Expander) ContactPoints() (contactA, contactB mgl64.Vec3) {
	contactA = e.FaceVerts[0].WorldA.Mul(e.BaryU).
		Add(e.FaceVerts[1].WorldA.Mul(e.BaryV)).
		Add(e.FaceVerts[2].WorldA.Mul(e.BaryW))
	contactB = e.FaceVerts[0].WorldB.Mul(e.BaryU).
		Add(e.FaceVerts[1].WorldB.Mul(e.BaryV)).
		Add(e.FaceVerts[2].WorldB.Mul(e.BaryW))
	return
}
