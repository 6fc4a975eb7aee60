//go:build ebiten

package ui

import (
	"image/color"

	"gol-ca/internal/core"
	"gol-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hoverColor = color.RGBA{R: 255, G: 120, B: 120, A: 96}

// Overlay draws optional grid lines and a hover marker on top of the board.
type Overlay struct {
	size     core.Size
	cellSize int
	painter  *render.CellPainter
	showGrid bool
}

// NewOverlay constructs a new overlay for a board of the given geometry.
func NewOverlay(size core.Size, cellSize int, showGrid bool) *Overlay {
	return &Overlay{
		size:     size,
		cellSize: cellSize,
		painter:  render.NewCellPainter(cellSize),
		showGrid: showGrid,
	}
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid {
		o.painter.DrawGrid(screen, o.size)
	}
	if o.cellSize <= 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	c := core.Cell{X: mx / o.cellSize, Y: my / o.cellSize}
	if mx < 0 || my < 0 || c.X >= o.size.W || c.Y >= o.size.H {
		return
	}
	x, y, w, h := render.CellRect(c, o.cellSize)
	vector.DrawFilledRect(screen, x, y, w, h, hoverColor, false)
}
