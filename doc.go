// Package pathsel selects drawing objects by their geometric relation to a
// reference path.
//
// The reference path is given as a [Superpath], the (in, anchor, out) knot
// representation vector editors use internally, and decomposed into a
// [Curve] of cubic Béziers. Candidate objects are known only by an id and a
// [BoundingBox].
//
// # Touching and enclosed
//
// With [MethodTouching], the reference curve is sampled at evenly spaced
// parameters and a candidate matches if a sample falls in its bounding box
// ([TouchBoxCross]) or near its center ([TouchBoxCenter]).
//
// With [MethodEnclosed], the reference curve must be closed. Points are
// classified with [Solver.Contains], an even–odd ray cast whose crossings are
// found by [Solver.Intersect]. A candidate matches if the center of its box
// ([EncloseBoxCenter]), all corners ([EncloseAllPoints]) or any corner
// ([EncloseAnyPoint]) is inside.
//
// # Intersections
//
// [Solver.Intersect] runs two-dimensional Newton–Raphson iteration on every
// pair of segments from nine fixed seeds. It does not subdivide or bound the
// segments first; it finds tolerance-bounded roots, not exact ones, and a
// seed that stalls is silently dropped. Results are deterministic.
//
// # Reconciling
//
// [Reconcile] combines the matches with the previously selected ids under a
// [Mode]. [Selector] ties the steps together.
package pathsel
