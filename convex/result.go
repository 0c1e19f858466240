package convex

import "github.com/go-gl/mathgl/mgl64"

// Outcome classifies a Detect call's result.
type Outcome int

const (
	// Disjoint means the shapes do not overlap; Distance and the Witness
	// points are valid.
	Disjoint Outcome = iota
	// Overlap means the shapes intersect; Normal, Depth, and the Contact
	// points are valid.
	Overlap
	// Degenerate means neither sub-algorithm could converge on the given
	// geometry. Detect also returns ErrDegenerateInput alongside this
	// Outcome.
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Disjoint:
		return "Disjoint"
	case Overlap:
		return "Overlap"
	case Degenerate:
		return "Degenerate"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a Detect call (the Witness Extractor's output,
// unified across the disjoint and overlap cases).
type Result struct {
	Outcome Outcome

	// Valid when Outcome == Disjoint.
	Distance  float64
	WitnessA  mgl64.Vec3
	WitnessB  mgl64.Vec3

	// Valid when Outcome == Overlap. Normal points from A toward B:
	// moving B along Normal (or A against it) by Depth separates the
	// shapes with minimum translation.
	Normal   mgl64.Vec3
	Depth    float64
	ContactA mgl64.Vec3
	ContactB mgl64.Vec3

	// Iterations is the number of GJK iterations Detect ran, exposed for
	// diagnostics and the stepdebug tool.
	Iterations int
}
