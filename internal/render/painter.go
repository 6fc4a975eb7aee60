//go:build ebiten

package render

import (
	"iter"

	"gol-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CellPainter draws live cells as filled squares.
type CellPainter struct {
	cellSize int
}

// NewCellPainter returns a painter for the given cell footprint.
func NewCellPainter(cellSize int) *CellPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &CellPainter{cellSize: cellSize}
}

// Draw clears the board area and paints one square per live cell.
func (p *CellPainter) Draw(dst *ebiten.Image, cells iter.Seq[core.Cell]) {
	dst.Fill(BackgroundColor)
	for c := range cells {
		x, y, w, h := CellRect(c, p.cellSize)
		vector.DrawFilledRect(dst, x, y, w, h, LiveColor, false)
	}
}

// DrawGrid strokes the cell borders of a board.
func (p *CellPainter) DrawGrid(dst *ebiten.Image, size core.Size) {
	for _, s := range GridLines(size, p.cellSize) {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, 1, GridColor, false)
	}
}
