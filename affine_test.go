package pathsel

import (
	"math"
	"testing"
)

func TestAffineSVGMatrix(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)
	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Affine{2, 0, 0, 2, 0, 0}), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Affine{1, 0, 0, 1, 5, 6}), Pt(8, 10), epsilon)

	// matrix(a b c d e f) maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
	aff := NewAffine([6]float64{1, 2, 3, 4, 5, 6})
	assertNear(t, Pt(1, 1).Transform(aff), Pt(9, 12), 0)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
	diff(t, a1, Identity.Mul(a1))
	diff(t, a1, a1.Mul(Identity))
}

func TestAffineFinite(t *testing.T) {
	if Identity.IsNaN() || Identity.IsInf() {
		t.Error("identity is not finite")
	}
	if !(Affine{1, 0, 0, math.NaN(), 0, 0}).IsNaN() {
		t.Error("NaN coefficient not detected")
	}
	if !(Affine{1, 0, 0, 1, math.Inf(1), 0}).IsInf() {
		t.Error("infinite coefficient not detected")
	}
}
