package engine

// Size is a canvas size in pixels.
type Size struct {
	Width  int
	Height int
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box, (X0,Y0) top-left and (X1,Y1) bottom-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width of the box.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height of the box.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center of the box.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// GridConfig describes the dot grid.
type GridConfig struct {
	Cols       int
	Rows       int
	DotRadius  int
	DotPadding int
	OffsetY    int // Downward shift from the vertical centre.
}

// Cells is the number of dots the grid can hold.
func (g GridConfig) Cells() int {
	return g.Cols * g.Rows
}

// pitch is the distance between the top-left corners of adjacent dots.
func (g GridConfig) pitch() int {
	return 2*g.DotRadius + g.DotPadding
}

// Width is the pixel width of the whole grid, outer padding excluded.
func (g GridConfig) Width() int {
	return spanOf(g.Cols, g.DotRadius, g.DotPadding)
}

// Height is the pixel height of the whole grid, outer padding excluded.
func (g GridConfig) Height() int {
	return spanOf(g.Rows, g.DotRadius, g.DotPadding)
}

func spanOf(n, radius, padding int) int {
	if n <= 0 {
		return 0
	}
	return n*2*radius + (n-1)*padding
}

// GridLayout maps day indices to dot boxes on a canvas.
type GridLayout struct {
	Grid   GridConfig
	Origin Point // Top-left corner of the first dot.
}

// NewGridLayout centres grid horizontally on canvas and vertically with
// the configured downward offset.
func NewGridLayout(grid GridConfig, canvas Size) GridLayout {
	startX := floorDiv(canvas.Width-grid.Width(), 2)
	startY := floorDiv(canvas.Height-grid.Height(), 2) + grid.OffsetY
	return GridLayout{
		Grid:   grid,
		Origin: Point{X: float64(startX), Y: float64(startY)},
	}
}

// Position returns the row-major (row, col) cell of the 1-based day index.
func (l GridLayout) Position(day int) (row, col int) {
	if l.Grid.Cols <= 0 {
		return 0, 0
	}
	return (day - 1) / l.Grid.Cols, (day - 1) % l.Grid.Cols
}

// DotBox returns the bounding box of the dot for day. ok is false when the
// day is outside 1..totalDays or beyond the grid capacity; such days are
// not drawn.
func (l GridLayout) DotBox(day, totalDays int) (box Rect, ok bool) {
	if day < 1 || day > totalDays || day > l.Grid.Cells() {
		return Rect{}, false
	}

	row, col := l.Position(day)
	pitch := float64(l.Grid.pitch())
	diameter := float64(2 * l.Grid.DotRadius)

	x := l.Origin.X + float64(col)*pitch
	y := l.Origin.Y + float64(row)*pitch
	return Rect{X0: x, Y0: y, X1: x + diameter, Y1: y + diameter}, true
}

// floorDiv rounds toward negative infinity so an oversized grid still
// centres symmetrically.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
