package led

// Geometry describes how a rectangular LED matrix is wired.
//
// With the origin at the bottom right, row 0 is the bottom row and, when Serpentine is
// set, even rows run right to left and odd rows left to right. With the origin at the top
// left, rows are counted from the top and the alternation is mirrored.
type Geometry struct {
	Width, Height     int
	OriginBottomRight bool
	Serpentine        bool
}

// DefaultGeometry is the 8x8 board fixture.
func DefaultGeometry() Geometry {
	return Geometry{Width: 8, Height: 8, OriginBottomRight: true, Serpentine: true}
}

// Len returns the number of pixels.
func (g Geometry) Len() int { return g.Width * g.Height }

// Contains reports whether (x, y) is on the matrix.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps a board coordinate (x = file, y = rank, both from 0) to its position in
// the LED chain. It returns -1 outside the matrix.
func (g Geometry) Index(x, y int) int {
	if !g.Contains(x, y) {
		return -1
	}
	w := g.Width
	if g.OriginBottomRight {
		row := y
		col := w - 1 - x
		if g.Serpentine && row%2 == 1 {
			col = x
		}
		return row*w + col
	}
	row := g.Height - 1 - y
	col := x
	if g.Serpentine && row%2 == 1 {
		col = w - 1 - x
	}
	return row*w + col
}
