package core

// DoubleBuffer holds two equally sized grids and the index of the active one.
// The active grid is authoritative for display and edits; the other is
// scratch space for the next generation.
type DoubleBuffer struct {
	bufs   [2]*ByteGrid
	active int
}

// NewDoubleBuffer allocates both grids with buffer 0 active.
func NewDoubleBuffer(w, h int) *DoubleBuffer {
	return &DoubleBuffer{bufs: [2]*ByteGrid{NewByteGrid(w, h), NewByteGrid(w, h)}}
}

// Size returns the shared grid dimensions.
func (d *DoubleBuffer) Size() Size { return Size{W: d.bufs[0].W, H: d.bufs[0].H} }

// Active returns the index of the active buffer.
func (d *DoubleBuffer) Active() int { return d.active }

// Inactive returns the index of the scratch buffer.
func (d *DoubleBuffer) Inactive() int { return 1 - d.active }

// Buffer returns grid i. It panics for i outside {0, 1}.
func (d *DoubleBuffer) Buffer(i int) *ByteGrid { return d.bufs[i] }

// IsAlive reads (x, y) from buffer i; off-grid coordinates read as dead.
func (d *DoubleBuffer) IsAlive(i, x, y int) bool { return d.bufs[i].Alive(x, y) }

// SetAlive writes (x, y) in buffer i; off-grid coordinates are ignored.
func (d *DoubleBuffer) SetAlive(i, x, y int, alive bool) { d.bufs[i].Set(x, y, alive) }

// Swap flips which buffer is active. No cell data moves.
func (d *DoubleBuffer) Swap() { d.active = 1 - d.active }

// Reset clears both grids and makes buffer 0 active again.
func (d *DoubleBuffer) Reset() {
	d.bufs[0].Clear()
	d.bufs[1].Clear()
	d.active = 0
}
