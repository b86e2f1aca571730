// Package scene reads the description of a document that a selection pass
// runs on: the reference path, the candidate objects and the current
// selection.
//
// Documents are TOML files. The host integration that exports them has
// already resolved transforms of the candidates, computed their bounding
// boxes and converted the reference path to superpath form:
//
//	selection = ["rect2"]
//
//	[reference]
//	id = "path1"
//	d = "M 0,0 L 10,0 10,10 0,10 Z"
//	transform = [1.0, 0.0, 0.0, 1.0, 0.0, 0.0]
//	parent_transform = [1.0, 0.0, 0.0, 1.0, 0.0, 0.0]
//	subpaths = [[
//	  [[0.0, 0.0], [0.0, 0.0], [0.0, 0.0]],
//	  [[10.0, 0.0], [10.0, 0.0], [10.0, 0.0]],
//	]]
//
//	[[candidates]]
//	id = "rect1"
//	kind = "rect"
//	box = [2.0, 2.0, 4.0, 4.0]
//
// Instead of subpaths, a straight-edged reference may be given as polygon, a
// list of points that is joined up if closed is set.
package scene

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pathsel/pathsel"
)

// Document is one scene: the reference path, the candidates and the ids
// selected before the pass.
type Document struct {
	Reference  Reference   `toml:"reference"`
	Candidates []Candidate `toml:"candidates"`
	Selection  []string    `toml:"selection"`
}

// Reference is the path candidates are tested against.
type Reference struct {
	ID string `toml:"id"`
	// D is the path data of the reference. It is only used to check that
	// the path has a single subpath and whether it is closed.
	D string `toml:"d"`
	// Closed is used when D is empty.
	Closed bool `toml:"closed"`
	// Transform holds the six coefficients of the reference's transform, as
	// in SVG's matrix(a b c d e f). Empty means identity.
	Transform []float64 `toml:"transform"`
	// ParentTransform is the composed transform of the reference's
	// ancestors, in the same form. It is applied after Transform.
	ParentTransform []float64 `toml:"parent_transform"`
	// Subpaths holds knots as (in, anchor, out) triples of points.
	Subpaths [][][3][2]float64 `toml:"subpaths"`
	Polygon  [][2]float64      `toml:"polygon"`
}

// Candidate is an object that may be selected.
type Candidate struct {
	ID   string `toml:"id"`
	Kind string `toml:"kind"`
	// Box is left, top, right, bottom.
	Box    [4]float64 `toml:"box"`
	Hidden bool       `toml:"hidden"`
	Locked bool       `toml:"locked"`
}

// Load reads the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read decodes a document. Unknown keys are rejected.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// Input converts the document to the input of a selection pass. It fails
// with an error wrapping [pathsel.ErrInput] if the reference path is not a
// single, well-formed path.
func (doc *Document) Input() (pathsel.Input, error) {
	ref := doc.Reference
	closed, err := ref.closed()
	if err != nil {
		return pathsel.Input{}, err
	}
	aff, err := ref.affine()
	if err != nil {
		return pathsel.Input{}, err
	}
	curve := ref.superpath(closed).Curve(aff)
	if len(curve) == 0 {
		return pathsel.Input{}, fmt.Errorf("%w: reference %q has no segments", pathsel.ErrInput, ref.ID)
	}
	for _, seg := range curve {
		if seg.IsNaN() || seg.IsInf() {
			return pathsel.Input{}, fmt.Errorf("%w: reference %q has non-finite coordinates", pathsel.ErrInput, ref.ID)
		}
	}

	cands := make([]pathsel.Candidate, len(doc.Candidates))
	for i, c := range doc.Candidates {
		if c.ID == "" {
			return pathsel.Input{}, fmt.Errorf("%w: candidate %d has no id", pathsel.ErrInput, i)
		}
		cands[i] = pathsel.Candidate{
			ID:     c.ID,
			Kind:   c.Kind,
			Box:    pathsel.Box(c.Box[0], c.Box[1], c.Box[2], c.Box[3]),
			Hidden: c.Hidden,
			Locked: c.Locked,
		}
	}

	return pathsel.Input{
		Reference:  curve,
		Closed:     closed,
		Candidates: cands,
		Selection:  doc.Selection,
	}, nil
}

// closed reports whether the reference is closed, checking its path data if
// there is any. A path with several moveto or closepath commands is
// rejected.
func (ref Reference) closed() (bool, error) {
	if ref.D == "" {
		return ref.Closed, nil
	}
	d := strings.ToLower(ref.D)
	m := strings.Count(d, "m")
	z := strings.Count(d, "z")
	if m > 1 || z > 1 {
		return false, fmt.Errorf("%w: reference %q has multiple subpaths (%d moveto, %d closepath)", pathsel.ErrInput, ref.ID, m, z)
	}
	return z > 0 && m == z, nil
}

// affine returns the transform from the reference's own coordinates to
// document coordinates.
func (ref Reference) affine() (pathsel.Affine, error) {
	own, err := ref.coefficients("transform", ref.Transform)
	if err != nil {
		return pathsel.Affine{}, err
	}
	parent, err := ref.coefficients("parent_transform", ref.ParentTransform)
	if err != nil {
		return pathsel.Affine{}, err
	}
	return parent.Mul(own), nil
}

func (ref Reference) coefficients(key string, n []float64) (pathsel.Affine, error) {
	switch len(n) {
	case 0:
		return pathsel.Identity, nil
	case 6:
		aff := pathsel.NewAffine([6]float64(n))
		if aff.IsNaN() || aff.IsInf() {
			return pathsel.Affine{}, fmt.Errorf("%w: reference %q: %s is not finite", pathsel.ErrInput, ref.ID, key)
		}
		return aff, nil
	default:
		return pathsel.Affine{}, fmt.Errorf("%w: reference %q: %s needs 6 coefficients, got %d", pathsel.ErrInput, ref.ID, key, len(n))
	}
}

func (ref Reference) superpath(closed bool) pathsel.Superpath {
	var sp pathsel.Superpath
	for _, sub := range ref.Subpaths {
		knots := make(pathsel.Subpath, len(sub))
		for i, k := range sub {
			knots[i] = pathsel.Knot{
				In:     pathsel.Pt(k[0][0], k[0][1]),
				Anchor: pathsel.Pt(k[1][0], k[1][1]),
				Out:    pathsel.Pt(k[2][0], k[2][1]),
			}
		}
		sp = append(sp, knots)
	}
	if len(ref.Polygon) > 0 {
		pts := make([]pathsel.Point, len(ref.Polygon))
		for i, p := range ref.Polygon {
			pts[i] = pathsel.Pt(p[0], p[1])
		}
		sp = append(sp, pathsel.PolylineSubpath(closed, pts...))
	}
	return sp
}
