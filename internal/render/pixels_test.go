package render

import (
	"image/color"
	"testing"

	"gol-ca/internal/core"
)

func TestCellRect(t *testing.T) {
	x, y, w, h := CellRect(core.Cell{X: 5, Y: 7}, 10)
	if x != 50 || y != 70 || w != 10 || h != 10 {
		t.Fatalf("rect=(%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(core.Size{W: 4, H: 3}, 10)
	if len(lines) != 3+2 {
		t.Fatalf("got %d lines", len(lines))
	}
	first := lines[0]
	if first != (Segment{X0: 10, Y0: 0, X1: 10, Y1: 30}) {
		t.Fatalf("first line %+v", first)
	}
	last := lines[len(lines)-1]
	if last != (Segment{X0: 0, Y0: 20, X1: 40, Y1: 20}) {
		t.Fatalf("last line %+v", last)
	}
}

func TestSnapshotColors(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	img := Snapshot(cells, core.Size{W: 2, H: 2})
	if img == nil {
		t.Fatal("nil snapshot")
	}
	if got := img.RGBAAt(0, 0); got != LiveColor {
		t.Fatalf("live pixel %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("dead pixel %v", got)
	}
	if Snapshot(cells, core.Size{W: 3, H: 3}) != nil {
		t.Fatal("mismatched size should return nil")
	}
}
