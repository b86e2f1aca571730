package pathsel

// RayLength is the length of the ray cast by [Solver.Contains]. Curves
// extending further than this below a point are not seen by the test.
const RayLength = 10000

// Contains reports whether pt lies inside the closed curve c, using the
// even–odd rule on a ray cast from pt in the +y direction.
//
// Points within the tolerance of the curve itself are reported as inside.
// Away from the boundary, a ray grazing a vertex or running tangent to the
// curve can still miscount crossings. Near a tangency Newton converges
// slowly, so two seeds may stop on the same crossing about the tolerance
// apart; [Dedup] keeps both and the point flips between inside and outside.
func (s Solver) Contains(pt Point, c Curve) bool {
	tol, _ := s.params()
	if c.Nearest(pt) <= tol*tol {
		return true
	}
	ray := Curve{RayBez(pt, pt.Translate(Vec(0, RayLength)))}
	return len(s.Intersect(ray, c))%2 == 1
}
