package render

import (
	"image"
	"image/color"

	"gol-ca/internal/core"
)

var (
	// LiveColor fills live cells.
	LiveColor = color.RGBA{R: 255, A: 255}
	// BackgroundColor clears the board each frame.
	BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// GridColor strokes the optional cell borders.
	GridColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// CellRect returns the pixel rectangle covered by c for the given cell size.
func CellRect(c core.Cell, cellSize int) (x, y, w, h float32) {
	s := float32(cellSize)
	return float32(c.X) * s, float32(c.Y) * s, s, s
}

// Segment is a line from (X0, Y0) to (X1, Y1) in pixels.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the interior cell borders of a board.
func GridLines(size core.Size, cellSize int) []Segment {
	s := float32(cellSize)
	wPx, hPx := float32(size.W)*s, float32(size.H)*s
	lines := make([]Segment, 0, size.W+size.H)
	for x := 1; x < size.W; x++ {
		fx := float32(x) * s
		lines = append(lines, Segment{X0: fx, Y0: 0, X1: fx, Y1: hPx})
	}
	for y := 1; y < size.H; y++ {
		fy := float32(y) * s
		lines = append(lines, Segment{X0: 0, Y0: fy, X1: wPx, Y1: fy})
	}
	return lines
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Snapshot renders cells into an image with one pixel per cell, using the
// board colors. It returns nil when cells does not match size.
func Snapshot(cells []uint8, size core.Size) *image.RGBA {
	if len(cells) != size.W*size.H {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillBinaryRGBA(img.Pix, cells, LiveColor, BackgroundColor)
	return img
}
