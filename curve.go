package pathsel

import "math"

// Curve is an ordered sequence of cubic segments, as produced from one
// subpath or from the concatenation of a superpath's subpaths. Whether it is
// closed is tracked by the caller.
type Curve []CubicBez

// nearestSamples is the number of intervals per segment used to seed
// [Curve.Nearest].
const nearestSamples = 16

// Nearest returns the squared distance from pt to the closest point on the
// curve. It returns +Inf for an empty curve.
func (c Curve) Nearest(pt Point) (distSq float64) {
	distSq = math.Inf(1)
	for _, seg := range c {
		d, _ := seg.Nearest(pt)
		distSq = min(distSq, d)
	}
	return distSq
}

// Nearest finds the point on the segment closest to pt, returning the squared
// distance and its parameter.
//
// The segment is sampled coarsely and the best sample is refined by Newton
// iteration on (B(t)−pt)·B'(t) = 0, clamped to [0, 1].
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	bestT := 0.0
	best := c.P0.DistanceSquared(pt)
	for i := 1; i <= nearestSamples; i++ {
		ti := float64(i) / nearestSamples
		if d := c.Eval(ti).DistanceSquared(pt); d < best {
			best, bestT = d, ti
		}
	}

	t = bestT
	for range 8 {
		r := c.Eval(t).Sub(pt)
		d1 := c.Deriv(t)
		g := r.Dot(d1)
		gp := d1.Hypot2() + r.Dot(c.Deriv2(t))
		if gp == 0 {
			break
		}
		next := min(max(t-g/gp, 0), 1)
		if next == t {
			break
		}
		t = next
	}
	if d := c.Eval(t).DistanceSquared(pt); d < best {
		return d, t
	}
	return best, bestT
}
