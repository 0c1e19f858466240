// Package epa implements the Expanding Polytope Algorithm: given the
// terminal tetrahedron GJK produced when it detected overlap, it grows a
// closed triangular polytope in the Minkowski difference until the face
// nearest the origin stabilises, yielding penetration depth, contact
// normal, and the barycentric weights the caller combines with the face
// vertices' world-space support points to get witness points.
//
// What:
//
//   - Polytope is an explicit vertex list (gjk.Vertex, so support-pair
//     identity survives into EPA) plus a triangular face list.
//   - Step runs one expansion iteration: find the closest face, query a
//     support point along its normal, either converge or insert the
//     point and rebuild the horizon.
//
// Why:
//
//   - GJK alone only proves overlap; EPA is what turns "these shapes
//     touch" into the penetration vector a physics solver can push apart.
//
// Complexity: O(f) per iteration in the current face count f, which stays
// small (a few dozen) for the polyhedra this core targets.
//
// Errors: degenerate horizons (an edge visited three or more times) are
// not Go errors — they surface as StepFailure, not a returned error. A
// step that lowers the minimum face distance ends the expansion with
// StepConverged on the current closest face.
package epa
