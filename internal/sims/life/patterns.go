package life

import "gol-ca/internal/core"

// Pattern is a set of live-cell offsets relative to a placement origin.
type Pattern []core.Cell

// ReferenceSeed is the six-cell pattern written on startup and by Reset(0).
var ReferenceSeed = Pattern{
	{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7},
	{X: 6, Y: 6}, {X: 6, Y: 7}, {X: 6, Y: 8},
}

var patterns = map[string]Pattern{
	"blinker": {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	"block":   {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	"glider":  {{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	"toad": {
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	},
	"beacon": {
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3},
	},
}

// LookupPattern returns a named pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Place sets every cell of p alive in the active buffer, offset by (ox, oy).
// Cells landing off the grid are dropped.
func (l *Life) Place(p Pattern, ox, oy int) {
	active := l.buf.Active()
	for _, c := range p {
		l.buf.SetAlive(active, ox+c.X, oy+c.Y, true)
	}
}
