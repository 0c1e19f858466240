// Package convex is the narrow-phase collision core: it combines gjk and
// epa behind a single Detect call so a caller never has to know that
// overlap detection and penetration resolution are two different
// algorithms.
//
// What:
//
//   - Detect runs GJK to completion. If the shapes are disjoint it returns
//     their separation distance and witness points straight from GJK's
//     terminal simplex. If GJK reports overlap, Detect hands the terminal
//     simplex to EPA and returns the penetration depth, contact normal,
//     and contact points EPA converges to.
//   - StepDetect and StepExpand expose the same two algorithms one
//     iteration at a time, for debug visualisation and tests that want to
//     assert on intermediate state (cmd/stepdebug).
//
// Why:
//
//   - Every caller of this core wants one question answered — "are these
//     two shapes touching, and if so how do I push them apart" — not a
//     choice between two sub-algorithms.
//
// Complexity: dominated by GJK's and EPA's own bounds; see their package
// docs.
//
// Errors: ErrDegenerateInput surfaces when GJK or EPA cannot make progress
// on the given geometry (coincident vertices, exhausted iteration budget).
// It is the only Go error this package returns; everything else is
// encoded in Result.Outcome.
package convex
