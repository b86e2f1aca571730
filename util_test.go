package pathsel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// square returns the closed curve around (0, 0)–(10, 10) the way a host
// decomposes a rectangle path: knots without handles.
func square() Curve {
	return Superpath{PolylineSubpath(true, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))}.Curve(Identity)
}
