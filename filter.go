package pathsel

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Candidate is an object that may be selected. Only its id, kind, bounding
// box and flags are known to the filters.
type Candidate struct {
	ID string
	// Kind is the host element name, such as "path" or "g". An empty kind
	// is always considered.
	Kind   string
	Box    BoundingBox
	Hidden bool
	Locked bool
}

// SelectableKinds lists the element kinds considered for selection. Groups
// ("g") are added by [Options.IncludeGroups].
var SelectableKinds = []string{
	"path", "rect", "circle", "ellipse", "polygon",
	"polyline", "line", "text", "image", "use",
}

// Considers reports whether cand takes part in filtering at all.
func (opts Options) Considers(cand Candidate) bool {
	if !opts.IncludeHidden && (cand.Hidden || cand.Locked) {
		return false
	}
	switch {
	case cand.Kind == "":
		return true
	case cand.Kind == "g":
		return opts.IncludeGroups
	default:
		return slices.Contains(SelectableKinds, cand.Kind)
	}
}

// A Filter decides whether a candidate matches a reference curve.
type Filter interface {
	Match(cand Candidate) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(cand Candidate) bool

func (fn FilterFunc) Match(cand Candidate) bool { return fn(cand) }

// NewFilter returns the filter selected by opts for the reference curve ref.
// The caller is responsible for ref being closed when opts.Method is
// [MethodEnclosed].
func NewFilter(opts Options, ref Curve) (Filter, error) {
	switch opts.Method {
	case MethodTouching:
		samples := SampleCurve(ref, opts.Samples)
		switch opts.Touch {
		case TouchBoxCross:
			return FilterFunc(func(cand Candidate) bool {
				return AnyInBox(samples, cand.Box, opts.SelectionTolerance)
			}), nil
		case TouchBoxCenter:
			return FilterFunc(func(cand Candidate) bool {
				return AnyNear(samples, cand.Box.Center(), opts.SelectionTolerance)
			}), nil
		}
		return nil, fmt.Errorf("%w: unknown touching criterion %q", ErrConfiguration, opts.Touch)

	case MethodEnclosed:
		solver := opts.Solver()
		inside := func(pt Point) bool { return solver.Contains(pt, ref) }
		switch opts.Enclose {
		case EncloseBoxCenter:
			return FilterFunc(func(cand Candidate) bool {
				return inside(cand.Box.Center())
			}), nil
		case EncloseAllPoints:
			return FilterFunc(func(cand Candidate) bool {
				corners := cand.Box.Corners()
				return !slices.ContainsFunc(corners[:], func(pt Point) bool { return !inside(pt) })
			}), nil
		case EncloseAnyPoint:
			return FilterFunc(func(cand Candidate) bool {
				corners := cand.Box.Corners()
				return slices.ContainsFunc(corners[:], inside)
			}), nil
		}
		return nil, fmt.Errorf("%w: unknown enclosed criterion %q", ErrConfiguration, opts.Enclose)
	}
	return nil, fmt.Errorf("%w: unknown method %q", ErrConfiguration, opts.Method)
}

// SampleCurve evaluates every segment of c at n evenly spaced parameters in
// [0, 1], end points included. n must be at least 2.
func SampleCurve(c Curve, n int) []Point {
	ts := floats.Span(make([]float64, n), 0, 1)
	out := make([]Point, 0, len(c)*n)
	for _, seg := range c {
		for _, t := range ts {
			out = append(out, seg.Eval(t))
		}
	}
	return out
}

// AnyInBox reports whether one of pts lies in box grown by tol, edges
// included.
func AnyInBox(pts []Point, box BoundingBox, tol float64) bool {
	grown := box.Inflate(tol)
	return slices.ContainsFunc(pts, grown.ContainsInclusive)
}

// AnyNear reports whether one of pts is closer than tol to target.
func AnyNear(pts []Point, target Point, tol float64) bool {
	return slices.ContainsFunc(pts, func(p Point) bool {
		return p.Distance(target) < tol
	})
}
