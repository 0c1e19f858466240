// Package gjk implements the Gilbert-Johnson-Keerthi distance algorithm
// between two convex shapes exposed only through a Support Oracle.
//
// What:
//
//   - Vertex pairs a simplex point with the support-index identity that
//     produced it, so duplicate-support detection never relies on
//     floating-point position equality.
//   - Simplex carries 1-4 Vertex plus a barycentric divisor.
//   - SolveLine/SolveTriangle/SolveTetrahedron reduce a Simplex to the
//     sub-feature closest to a query point, writing a Weight on every
//     retained Vertex.
//   - Driver runs the iteration loop; Step runs exactly one iteration so
//     callers can single-step for visualisation or tests.
//
// Why:
//
//   - GJK proves separation (or overlap) of two convex hulls without ever
//     materialising the Minkowski difference, using only a handful of
//     support queries per pair.
//
// Complexity: O(k) per iteration in the number of support queries, where
// k is bounded by Config.MaxIterations; each query is O(N) in the calling
// shape's vertex count.
//
// Errors: ErrNonFiniteDirection is a programming-error precondition,
// panicked on by MinkowskiSupport rather than returned. Degenerate
// geometry and iteration overflow are not Go errors — they are values of
// StepResult (StepDegenerate), since they are an expected outcome of
// numerically difficult input, not a failure of the call itself.
package gjk
