package scatter

// Rect is an axis-aligned rectangle in canvas coordinates.
// The origin is the top-left corner; x grows right, y grows down.
// All values are in user units (typically pixels in SVG).
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge or corner do not overlap:
// the intervals must strictly intersect on both axes. This keeps
// zero-gap adjacency legal, which matters for density near the edges
// of a crowded canvas.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// In reports whether r lies fully inside a canvas of the given size.
func (r Rect) In(width, height float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}
