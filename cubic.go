package pathsel

// CubicBez is one cubic Bézier segment. P1 and P2 are the control points;
// the segment never closes implicitly.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// RayBez returns the cubic running from p0 to p1 with both control points
// collapsed onto the end points. Its trace is the straight segment p0p1, but
// its parametrization is not linear and its derivative vanishes at both ends.
func RayBez(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0, p1, p1}
}

// LineBez returns the straight segment from p0 to p1 as a cubic with linear
// parametrization.
func LineBez(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the segment at t. t is not restricted to [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d01.Add(d12).Add(d23)
}

// Deriv2 evaluates the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	dd0 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd1 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return dd0.Mul(6 * (1 - t)).Add(dd1.Mul(6 * t))
}
