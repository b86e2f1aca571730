package pathsel

// Knot is one anchor of a superpath together with its incoming and outgoing
// control points. For a corner without handles all three coincide.
type Knot struct {
	In     Point
	Anchor Point
	Out    Point
}

func (k Knot) Transform(aff Affine) Knot {
	return Knot{
		In:     k.In.Transform(aff),
		Anchor: k.Anchor.Transform(aff),
		Out:    k.Out.Transform(aff),
	}
}

// Subpath is the ordered list of knots of one continuous piece of a path.
type Subpath []Knot

// Superpath is a path made of subpaths of knots.
type Superpath []Subpath

// Segments returns the cubic segments between consecutive knots of sp, after
// transforming every knot by aff. A subpath with fewer than two knots has no
// segments.
func (sp Subpath) Segments(aff Affine) Curve {
	if len(sp) < 2 {
		return nil
	}
	knots := make([]Knot, len(sp))
	for i, k := range sp {
		knots[i] = k.Transform(aff)
	}
	out := make(Curve, 0, len(knots)-1)
	for i := range len(knots) - 1 {
		k0, k1 := knots[i], knots[i+1]
		out = append(out, CubicBez{k0.Anchor, k0.Out, k1.In, k1.Anchor})
	}
	return out
}

// Curve decomposes sp into a single curve holding the segments of all
// subpaths in order.
func (sp Superpath) Curve(aff Affine) Curve {
	var out Curve
	for _, sub := range sp {
		out = append(out, sub.Segments(aff)...)
	}
	return out
}

// PolylineSubpath returns a subpath whose knots have no handles, so that each
// segment is the straight line between consecutive points. If closed is
// true, the first point is repeated at the end.
func PolylineSubpath(closed bool, pts ...Point) Subpath {
	out := make(Subpath, 0, len(pts)+1)
	for _, p := range pts {
		out = append(out, Knot{p, p, p})
	}
	if closed && len(pts) > 0 {
		p := pts[0]
		out = append(out, Knot{p, p, p})
	}
	return out
}
