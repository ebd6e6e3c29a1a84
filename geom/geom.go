// Package geom provides the rectangle and coordinate-frame arithmetic used
// by the analysis pipeline. Boxes are axis-aligned with the origin in the
// upper-left corner of the page image, matching detector output.
package geom

import "math"

// Point is a position in pixel coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box (x0, y0) .. (x1, y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle has non-positive extent.
func (r Rect) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X0 >= r.X0 && o.Y0 >= r.Y0 && o.X1 <= r.X1 && o.Y1 <= r.Y1
}

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Pad grows the rectangle by px horizontally and py vertically on each side.
func (r Rect) Pad(px, py float64) Rect {
	return Rect{r.X0 - px, r.Y0 - py, r.X1 + px, r.Y1 + py}
}

// Intersect returns the overlap of r and o. The result is empty when the
// rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, o.X0),
		Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Clip restricts the rectangle to bounds.
func (r Rect) Clip(bounds Rect) Rect { return r.Intersect(bounds) }
