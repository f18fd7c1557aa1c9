// Package damage tracks which parts of the canvas changed.
//
// Two granularities are provided. Rect is the pixel-exact bounding box
// accumulated while a stroke is painted, reported once per stroke to the
// observer. TileBitmap is the coarse per-tile dirty set a display layer
// keeps between repaints.
package damage

// Rect is an axis-aligned integer rectangle in world-space pixels.
//
// W == 0 is the canonical empty rectangle; the zero value is empty.
type Rect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W == 0
}

// ExpandToPoint grows the rectangle to include the pixel (x, y). Expanding
// an empty rectangle yields the 1x1 rectangle at (x, y).
func (r *Rect) ExpandToPoint(x, y int) {
	if r.IsEmpty() {
		*r = Rect{X: x, Y: y, W: 1, H: 1}
		return
	}
	if x < r.X {
		r.W += r.X - x
		r.X = x
	}
	if y < r.Y {
		r.H += r.Y - y
		r.Y = y
	}
	if x >= r.X+r.W {
		r.W = x - r.X + 1
	}
	if y >= r.Y+r.H {
		r.H = y - r.Y + 1
	}
}

// ExpandToRect grows the rectangle to include all of o. Expanding by an
// empty rectangle is a no-op.
func (r *Rect) ExpandToRect(o Rect) {
	if o.IsEmpty() {
		return
	}
	r.ExpandToPoint(o.X, o.Y)
	r.ExpandToPoint(o.X+o.W-1, o.Y+o.H-1)
}

// Intersect returns the intersection of r and o, or an empty rectangle if
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
