package convex

import "errors"

// ErrDegenerateInput indicates GJK or EPA could not make progress on the
// given pair of shapes — coincident support points, an inconsistent EPA
// horizon, or an iteration budget exhausted without converging.
var ErrDegenerateInput = errors.New("convex: degenerate input, could not converge")
