package life

import (
	"testing"
	"time"
)

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("nil map=%+v", got)
	}
	c := DefaultConfig()
	if c.Width != 80 || c.Height != 60 || c.CellSize != 10 || c.Tick != time.Second {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFromMapParses(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "40",
		"h":       "30",
		"cell":    "16",
		"tick":    "250ms",
		"paused":  "true",
		"density": "0.5",
		"soup":    SoupPerlin,
	})
	if c.Width != 40 || c.Height != 30 || c.CellSize != 16 {
		t.Fatalf("geometry %+v", c)
	}
	if c.Tick != 250*time.Millisecond || !c.Paused {
		t.Fatalf("timing %+v", c)
	}
	if c.Density != 0.5 || c.Soup != SoupPerlin {
		t.Fatalf("soup %+v", c)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "-4",
		"h":       "abc",
		"cell":    "0",
		"tick":    "-1s",
		"density": "1.5",
		"soup":    "fractal",
	})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}

func TestPausedConfigStartsPaused(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paused = true
	if NewWithConfig(cfg).Running() {
		t.Fatal("paused config should start paused")
	}
}
