package viewport

// Rect is a pixel rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Aspect returns the width/height ratio of r.
func (r Rect) Aspect() (float64, bool) {
	return Aspect(r.W, r.H)
}

// Contains reports whether pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ScissorFor clips elem against canvas and returns the visible part in
// canvas-local coordinates. Both rectangles are in the same screen space.
func ScissorFor(canvas, elem Rect) Rect {
	left := max(0, elem.X-canvas.X)
	top := max(0, elem.Y-canvas.Y)
	right := min(elem.Right(), canvas.Right()) - canvas.X
	bottom := min(elem.Bottom(), canvas.Bottom()) - canvas.Y

	w := min(canvas.W, right-left)
	h := min(canvas.H, bottom-top)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: left, Y: top, W: w, H: h}
}

// SplitHorizontal divides canvas into n side-by-side columns. The last
// column absorbs any remainder so the columns tile the canvas exactly.
func SplitHorizontal(canvas Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	out := make([]Rect, n)
	w := canvas.W / n
	x := canvas.X
	for i := range n {
		cw := w
		if i == n-1 {
			cw = canvas.Right() - x
		}
		out[i] = Rect{X: x, Y: canvas.Y, W: cw, H: canvas.H}
		x += cw
	}
	return out
}

// Intersect returns the overlap of r and o, both in the same space. The
// result has zero size when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
