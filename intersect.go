package pathsel

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultTolerance is the distance below which two points are
	// considered coincident.
	DefaultTolerance = 1e-6
	// DefaultMaxIter is the number of Newton steps tried per seed.
	DefaultMaxIter = 20
)

// seeds are the starting parameters tried on each axis. Every segment pair
// is started from all nine combinations.
var seeds = floats.Span(make([]float64, 3), 0.1, 0.9)

// Solver finds intersections between curves by Newton–Raphson iteration.
// The zero value uses [DefaultTolerance] and [DefaultMaxIter].
type Solver struct {
	Tolerance float64
	MaxIter   int
}

func (s Solver) params() (tol float64, maxIter int) {
	tol, maxIter = s.Tolerance, s.MaxIter
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	return tol, maxIter
}

// Intersect returns the points where a and b cross, in the order they were
// found, with points closer than the tolerance merged.
//
// Every pair of segments is started from every seed, even after a root has
// been found, because a pair of cubics can cross more than once. Seeds that
// hit a singular Jacobian or fail to converge contribute nothing.
func (s Solver) Intersect(a, b Curve) []Point {
	tol, maxIter := s.params()
	nw := newNewton()
	var raw []Point
	for _, segA := range a {
		for _, segB := range b {
			for _, t0 := range seeds {
				for _, s0 := range seeds {
					if p, ok := nw.converge(segA, segB, t0, s0, tol, maxIter); ok {
						raw = append(raw, p)
					}
				}
			}
		}
	}
	return Dedup(raw, tol)
}

// Dedup drops every point closer than tol to a point kept before it. The
// first point of each cluster is the one retained. Dedup is idempotent.
func Dedup(pts []Point, tol float64) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		near := func(q Point) bool { return p.Distance(q) < tol }
		if !slices.ContainsFunc(out, near) {
			out = append(out, p)
		}
	}
	return out
}

// newton holds the linear algebra scratch space reused across seeds.
type newton struct {
	jac   *mat.Dense
	f     *mat.VecDense
	delta *mat.VecDense
}

func newNewton() *newton {
	return &newton{
		jac:   mat.NewDense(2, 2, nil),
		f:     mat.NewVecDense(2, nil),
		delta: mat.NewVecDense(2, nil),
	}
}

// converge runs Newton's method on F(t, s) = a(t) − b(s) from (t0, s0). It
// reports the point on a once |F| drops below tol.
func (nw *newton) converge(a, b CubicBez, t0, s0, tol float64, maxIter int) (Point, bool) {
	t, s := t0, s0
	for range maxIter {
		pa := a.Eval(t)
		f := pa.Sub(b.Eval(s))
		if f.Hypot() < tol {
			return pa, true
		}

		da := a.Deriv(t)
		db := b.Deriv(s)
		nw.jac.Set(0, 0, da.X)
		nw.jac.Set(1, 0, da.Y)
		nw.jac.Set(0, 1, -db.X)
		nw.jac.Set(1, 1, -db.Y)
		nw.f.SetVec(0, f.X)
		nw.f.SetVec(1, f.Y)
		if !nw.solve() {
			return Point{}, false
		}

		t = min(max(t-nw.delta.AtVec(0), 0), 1)
		s = min(max(s-nw.delta.AtVec(1), 0), 1)
	}
	return Point{}, false
}

// solve solves jac·delta = f. It reports false for a singular system.
// Ill-conditioned but solvable systems are accepted; the clamp in converge
// keeps the resulting large steps in range.
func (nw *newton) solve() bool {
	if err := nw.delta.SolveVec(nw.jac, nw.f); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return false
		}
	}
	d0, d1 := nw.delta.AtVec(0), nw.delta.AtVec(1)
	return !math.IsNaN(d0) && !math.IsNaN(d1) && !math.IsInf(d0, 0) && !math.IsInf(d1, 0)
}
