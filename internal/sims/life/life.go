package life

import (
	"time"

	"gol-ca/internal/core"
)

// neighborOffsets lists the eight cells at Chebyshev distance one.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
// Generations are computed from the active buffer into the scratch buffer,
// which then becomes active.
type Life struct {
	cfg        Config
	buf        *core.DoubleBuffer
	clock      *core.Clock
	generation int
}

// New returns a Life simulation with the provided dimensions using defaults
// for everything else.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation seeded with ReferenceSeed.
func NewWithConfig(cfg Config) *Life {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	l := &Life{
		cfg:   cfg,
		buf:   core.NewDoubleBuffer(cfg.Width, cfg.Height),
		clock: core.NewClock(cfg.Tick),
	}
	l.clock.SetRunning(!cfg.Paused)
	l.Place(ReferenceSeed, 0, 0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.buf.Size() }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Buffers exposes the double buffer backing the simulation.
func (l *Life) Buffers() *core.DoubleBuffer { return l.buf }

// Cells exposes the active grid values.
func (l *Life) Cells() []uint8 { return l.buf.Buffer(l.buf.Active()).Cells() }

// Generation returns the number of generations advanced since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population counts live cells in the active buffer.
func (l *Life) Population() int { return l.buf.Buffer(l.buf.Active()).Population() }

// Running reports whether ticks advance the simulation.
func (l *Life) Running() bool { return l.clock.Running() }

// Clock exposes the tick accumulator.
func (l *Life) Clock() *core.Clock { return l.clock }

// Reset clears both buffers and reseeds the active one. Seed zero restores
// ReferenceSeed; other seeds fill a random soup.
func (l *Life) Reset(seed int64) {
	l.buf.Reset()
	l.generation = 0
	l.clock.Restart()
	if seed == 0 {
		l.Place(ReferenceSeed, 0, 0)
		return
	}
	fillSoup(l.buf.Buffer(l.buf.Active()), seed, l.cfg.Soup, l.cfg.Density)
}

// Clear kills every cell in the active buffer.
func (l *Life) Clear() {
	l.buf.Buffer(l.buf.Active()).Clear()
}

// CountNeighbors returns the number of live cells adjacent to (x, y) in
// buffer i. Off-grid neighbors count as dead.
func (l *Life) CountNeighbors(i, x, y int) int {
	count := 0
	for _, d := range neighborOffsets {
		if l.buf.IsAlive(i, x+d[0], y+d[1]) {
			count++
		}
	}
	return count
}

// nextState applies the transition rule. A dead cell without exactly three
// neighbors keeps its current value.
func nextState(alive bool, count int, current bool) bool {
	switch {
	case alive && count < 2:
		return false
	case alive && (count == 2 || count == 3):
		return true
	case alive && count > 3:
		return false
	case !alive && count == 3:
		return true
	default:
		return current
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.buf.Active(), l.buf.Inactive()
	size := l.buf.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.buf.IsAlive(cur, x, y)
			count := l.CountNeighbors(cur, x, y)
			l.buf.SetAlive(nxt, x, y, nextState(alive, count, alive))
		}
	}
	l.buf.Swap()
	l.generation++
}

// StepN advances n generations.
func (l *Life) StepN(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// TickInterval returns the time between generations while running.
func (l *Life) TickInterval() time.Duration { return l.clock.Interval() }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
