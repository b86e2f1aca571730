package pathsel

import "fmt"

// BoundingBox is the axis-aligned box enclosing a candidate object, in
// document coordinates. In the y-down space of SVG documents Top is the
// smaller y.
type BoundingBox struct {
	Left, Top     float64
	Right, Bottom float64
}

// Box returns the bounding box with the given extents, ensuring that width
// and height are non-negative.
func Box(left, top, right, bottom float64) BoundingBox {
	return BoundingBox{
		Left:   min(left, right),
		Top:    min(top, bottom),
		Right:  max(left, right),
		Bottom: max(top, bottom),
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", b.Left, b.Top, b.Right, b.Bottom)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{
		X: 0.5 * (b.Left + b.Right),
		Y: 0.5 * (b.Top + b.Bottom),
	}
}

// Corners returns the four corners, clockwise in a y-down space starting at
// the top left.
func (b BoundingBox) Corners() [4]Point {
	return [4]Point{
		{b.Left, b.Top},
		{b.Right, b.Top},
		{b.Right, b.Bottom},
		{b.Left, b.Bottom},
	}
}

// Inflate returns the box grown by d on every side.
func (b BoundingBox) Inflate(d float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left - d,
		Top:    b.Top - d,
		Right:  b.Right + d,
		Bottom: b.Bottom + d,
	}
}

// ContainsInclusive reports whether pt lies in the box or on its edges.
func (b BoundingBox) ContainsInclusive(pt Point) bool {
	return pt.X >= b.Left &&
		pt.X <= b.Right &&
		pt.Y >= b.Top &&
		pt.Y <= b.Bottom
}
