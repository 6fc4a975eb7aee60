package core

import "testing"

func TestByteGridOutOfRangeIsDead(t *testing.T) {
	g := NewByteGrid(4, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-5, -5}, {100, 2}}
	for _, c := range outside {
		if g.Alive(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) outside grid reported alive", c[0], c[1])
		}
	}
	if !g.Alive(3, 2) {
		t.Fatal("corner cell inside grid should be alive")
	}
}

func TestByteGridSetIgnoresOffGrid(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(-1, 0, true)
	g.Set(4, 2, true)
	g.Set(0, 3, true)
	if n := g.Population(); n != 0 {
		t.Fatalf("off-grid writes changed population to %d", n)
	}
	g.Set(1, 2, true)
	if !g.Alive(1, 2) || g.Cells()[g.Index(1, 2)] != 1 {
		t.Fatal("in-range write not stored")
	}
	g.Set(1, 2, false)
	if g.Alive(1, 2) {
		t.Fatal("cell should be dead after clearing")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestDoubleBufferSwapAlternates(t *testing.T) {
	d := NewDoubleBuffer(8, 8)
	if d.Active() != 0 || d.Inactive() != 1 {
		t.Fatalf("initial active=%d inactive=%d", d.Active(), d.Inactive())
	}
	for n := 1; n <= 7; n++ {
		d.Swap()
		if d.Active() != n%2 {
			t.Fatalf("after %d swaps active=%d, expected %d", n, d.Active(), n%2)
		}
		if d.Inactive() != 1-d.Active() {
			t.Fatal("inactive must be the other buffer")
		}
	}
}

func TestDoubleBufferSwapDoesNotCopy(t *testing.T) {
	d := NewDoubleBuffer(5, 5)
	d.SetAlive(d.Active(), 2, 2, true)
	d.Swap()
	if d.IsAlive(d.Active(), 2, 2) {
		t.Fatal("swap must not copy cell data into the new active buffer")
	}
	if !d.IsAlive(d.Inactive(), 2, 2) {
		t.Fatal("previous active buffer lost its data")
	}
}

func TestDoubleBufferReset(t *testing.T) {
	d := NewDoubleBuffer(3, 3)
	d.SetAlive(0, 1, 1, true)
	d.SetAlive(1, 0, 0, true)
	d.Swap()
	d.Reset()
	if d.Active() != 0 {
		t.Fatalf("active=%d after reset", d.Active())
	}
	if d.Buffer(0).Population() != 0 || d.Buffer(1).Population() != 0 {
		t.Fatal("reset must clear both buffers")
	}
}
