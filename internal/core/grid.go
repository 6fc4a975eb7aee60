package core

// ByteGrid stores a bounded 2D grid of binary cell values in row-major order.
// Coordinates outside [0, W) x [0, H) are permanently dead.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies on the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive returns the cell state, or false when (x, y) is off the grid.
func (g *ByteGrid) Alive(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] == 1
}

// Set writes a cell state. Off-grid writes are ignored.
func (g *ByteGrid) Set(x, y int, alive bool) {
	if !g.Contains(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Population counts live cells.
func (g *ByteGrid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == 1 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
