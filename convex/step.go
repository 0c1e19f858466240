package convex

import (
	"github.com/talusphys/convex/epa"
	"github.com/talusphys/convex/gjk"
)

// Phase identifies which sub-algorithm a Session is currently driving.
type Phase int

const (
	PhaseGJK Phase = iota
	PhaseEPA
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseGJK:
		return "GJK"
	case PhaseEPA:
		return "EPA"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Session drives GJK and, if needed, EPA one iteration at a time, for
// debug visualisation and tests that want to assert on intermediate
// simplex/polytope state.
type Session struct {
	a, b gjk.SupportOracle
	cfg  Config

	Phase Phase
	GJK   *gjk.Driver
	EPA   *epa.Expander

	Result Result
	Err    error
}

// NewSession seeds a Session ready for StepDetect.
func NewSession(a, b gjk.SupportOracle, cfg Config) *Session {
	return &Session{
		a:     a,
		b:     b,
		cfg:   cfg,
		Phase: PhaseGJK,
		GJK:   gjk.NewDriver(a, b, initialDirection(a, b), cfg.GJK),
	}
}

// StepDetect runs exactly one GJK iteration. Once GJK reaches a terminal
// state it transitions the Session into PhaseEPA (if overlapping) or
// PhaseDone (otherwise), and the caller should switch to calling
// StepExpand, or read Result if already done.
func (s *Session) StepDetect() gjk.StepResult {
	if s.Phase != PhaseGJK {
		return gjk.StepOverlap
	}

	result := s.GJK.Step()
	if result == gjk.StepContinue {
		return result
	}

	switch result {
	case gjk.StepDegenerate:
		s.Result = Result{Outcome: Degenerate, Iterations: s.GJK.Iterations}
		s.Err = ErrDegenerateInput
		s.Phase = PhaseDone

	case gjk.StepNoOverlap:
		witnessA, witnessB := s.GJK.Simplex.WitnessPoints()
		s.Result = Result{
			Outcome:    Disjoint,
			Distance:   s.GJK.Simplex.ClosestPoint().Len(),
			WitnessA:   witnessA,
			WitnessB:   witnessB,
			Iterations: s.GJK.Iterations,
		}
		s.Phase = PhaseDone

	case gjk.StepOverlap:
		simplex := s.GJK.Simplex
		if simplex.Count != 4 && !completeSimplex(&simplex, s.a, s.b) {
			s.Result = Result{Outcome: Degenerate, Iterations: s.GJK.Iterations}
			s.Err = ErrDegenerateInput
			s.Phase = PhaseDone
			break
		}
		expander, ok := epa.NewExpander(simplex, s.a, s.b, s.cfg.EPA)
		if !ok {
			s.Result = Result{Outcome: Degenerate, Iterations: s.GJK.Iterations}
			s.Err = ErrDegenerateInput
			s.Phase = PhaseDone
			break
		}
		s.EPA = expander
		s.Phase = PhaseEPA
	}
	return result
}

// StepExpand runs exactly one EPA iteration. Valid only once the Session
// has entered PhaseEPA. Once EPA converges or fails, the Session
// transitions to PhaseDone and Result/Err are populated.
func (s *Session) StepExpand() epa.StepResult {
	if s.Phase != PhaseEPA {
		return epa.StepFailure
	}

	result := s.EPA.Step()
	switch result {
	case epa.StepContinue:
		return result
	case epa.StepFailure:
		s.Result = Result{Outcome: Degenerate, Iterations: s.GJK.Iterations}
		s.Err = ErrDegenerateInput
		s.Phase = PhaseDone
	case epa.StepConverged:
		contactA, contactB := s.EPA.ContactPoints()
		s.Result = Result{
			Outcome:    Overlap,
			Normal:     s.EPA.Normal,
			Depth:      s.EPA.Depth,
			ContactA:   contactA,
			ContactB:   contactB,
			Iterations: s.GJK.Iterations,
		}
		s.Phase = PhaseDone
	}
	return result
}
