package life

import (
	"iter"
	"math"
	"strconv"
	"time"

	"gol-ca/internal/core"
)

// CellSize returns the pixel footprint of one cell.
func (l *Life) CellSize() int { return l.cfg.CellSize }

// PixelToCell converts a pointer position to grid coordinates.
func (l *Life) PixelToCell(px, py float64) (int, int) {
	size := float64(l.cfg.CellSize)
	return int(math.Floor(px / size)), int(math.Floor(py / size))
}

// OnPointerPrimary marks the cell under the pointer alive in the active
// buffer. Positions off the board are ignored.
func (l *Life) OnPointerPrimary(px, py float64) {
	x, y := l.PixelToCell(px, py)
	active := l.buf.Active()
	if !l.buf.Buffer(active).Contains(x, y) {
		return
	}
	l.buf.SetAlive(active, x, y, true)
}

// OnPointerSecondary toggles between running and paused.
func (l *Life) OnPointerSecondary() { l.clock.Toggle() }

// OnTick feeds elapsed frame time to the clock and advances one generation
// when the tick interval is reached. It reports whether a generation ran.
func (l *Life) OnTick(dt time.Duration) bool {
	if !l.clock.Advance(dt) {
		return false
	}
	l.Step()
	return true
}

// StepOnce advances a single generation regardless of the running flag.
func (l *Life) StepOnce() {
	l.clock.Restart()
	l.Step()
}

// RenderSnapshot yields every live cell of the active buffer in row-major
// order.
func (l *Life) RenderSnapshot() iter.Seq[core.Cell] {
	return func(yield func(core.Cell) bool) {
		g := l.buf.Buffer(l.buf.Active())
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.Alive(x, y) && !yield(core.Cell{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// LiveCells collects RenderSnapshot into a slice.
func (l *Life) LiveCells() []core.Cell {
	var cells []core.Cell
	for c := range l.RenderSnapshot() {
		cells = append(cells, c)
	}
	return cells
}

// Parameters publishes the session state for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	state := "running"
	if !l.Running() {
		state = "paused"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name:    "Simulation",
			Summary: state,
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(l.Population())},
				{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(l.Running())},
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick", Type: core.ParamTypeDuration, Value: l.clock.Interval().String()},
				{Key: "elapsed", Label: "Elapsed", Type: core.ParamTypeDuration, Value: l.clock.Accumulated().Truncate(time.Millisecond).String()},
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(size.W)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(size.H)},
				{Key: "cell", Label: "Cell px", Type: core.ParamTypeInt, Value: strconv.Itoa(l.cfg.CellSize)},
			},
		},
	}}
}
