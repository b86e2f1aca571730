package pathsel

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		if l := c.Deriv(ts).Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}

		d0 := c.Deriv(ts)
		d1 := c.Deriv(ts + delta)
		ddApprox := d1.Sub(d0).Mul(1.0 / delta)
		if l := c.Deriv2(ts).Sub(ddApprox).Hypot(); l >= 1e-4 {
			t.Errorf("got second derivative difference of %g, want at most %g", l, 1e-4)
		}
	}
}

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 3), Pt(3, 3), Pt(3, 0)}
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))
	assertNear(t, c.Eval(0.5), Pt(1.5, 2.25), 1e-12)

	// Evaluation is not restricted to [0, 1]; compare with the Bernstein
	// form directly.
	bernstein := func(t float64) Point {
		mt := 1 - t
		x := mt*mt*mt*c.P0.X + 3*mt*mt*t*c.P1.X + 3*mt*t*t*c.P2.X + t*t*t*c.P3.X
		y := mt*mt*mt*c.P0.Y + 3*mt*mt*t*c.P1.Y + 3*mt*t*t*c.P2.Y + t*t*t*c.P3.Y
		return Pt(x, y)
	}
	for _, ts := range []float64{-1, -0.25, 0.3, 1.5, 2} {
		assertNear(t, c.Eval(ts), bernstein(ts), 1e-9)
	}
}

func TestLineBez(t *testing.T) {
	c := LineBez(Pt(1, 2), Pt(7, -4))
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, c.Eval(ts), Pt(1, 2).Lerp(Pt(7, -4), ts), 1e-12)
		assertNear(t, Point(c.Deriv(ts)), Pt(6, -6), 1e-12)
	}
}

func TestRayBez(t *testing.T) {
	c := RayBez(Pt(0, 0), Pt(0, 10))
	if d := c.Deriv(0).Hypot(); d != 0 {
		t.Errorf("derivative at start is %g, want 0", d)
	}
	if d := c.Deriv(1).Hypot(); d != 0 {
		t.Errorf("derivative at end is %g, want 0", d)
	}
	for i := range 11 {
		p := c.Eval(float64(i) / 10)
		if p.X != 0 || p.Y < 0 || p.Y > 10 {
			t.Errorf("%s is not on the segment", p)
		}
	}
}

func TestCubicBezIsNaN(t *testing.T) {
	if (CubicBez{}).IsNaN() {
		t.Error("zero cubic is NaN")
	}
	if !(CubicBez{P2: Pt(math.NaN(), 0)}).IsNaN() {
		t.Error("cubic with NaN control point is not NaN")
	}
	if !(CubicBez{P3: Pt(0, math.Inf(-1))}).IsInf() {
		t.Error("cubic with infinite end point is not infinite")
	}
}

func TestCubicBezNearest(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(0.5, 0.25), 0, 0.5},
		{Pt(0, 0), 0, 0},
		{Pt(1, 1), 0, 1},
		{Pt(-1, 0), 1, 0},
		{Pt(2, 1), 1, 1},
	}
	for _, tt := range tests {
		distSq, ts := c.Nearest(tt.pt)
		if math.Abs(distSq-tt.distSq) > 1e-9 || math.Abs(ts-tt.t) > 1e-6 {
			t.Errorf("Nearest(%s) = (%g, %g), want (%g, %g)", tt.pt, distSq, ts, tt.distSq, tt.t)
		}
	}
}

func TestCurveNearest(t *testing.T) {
	sq := square()
	tests := []struct {
		pt     Point
		distSq float64
	}{
		{Pt(5, 5), 25},
		{Pt(10, 5), 0},
		{Pt(13, 14), 25},
		{Pt(5, -2), 4},
	}
	for _, tt := range tests {
		if got := sq.Nearest(tt.pt); math.Abs(got-tt.distSq) > 1e-9 {
			t.Errorf("Nearest(%s) = %g, want %g", tt.pt, got, tt.distSq)
		}
	}
	if got := Curve(nil).Nearest(Pt(0, 0)); !math.IsInf(got, 1) {
		t.Errorf("Nearest on empty curve = %g, want +Inf", got)
	}
}
