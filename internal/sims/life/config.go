package life

import (
	"strconv"
	"time"
)

// Soup generators used when Reset receives a nonzero seed.
const (
	SoupUniform = "uniform"
	SoupPerlin  = "perlin"
)

// Config holds the board geometry and timing for a Life session.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Tick   time.Duration
	Paused bool

	Density float64
	Soup    string
}

// DefaultConfig returns the reference 80x60 board with 10px cells and a one
// second tick.
func DefaultConfig() Config {
	return Config{
		Width:    80,
		Height:   60,
		CellSize: 10,
		Tick:     time.Second,
		Density:  0.25,
		Soup:     SoupUniform,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["tick"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Tick = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["soup"]; ok {
		switch v {
		case SoupUniform, SoupPerlin:
			c.Soup = v
		}
	}
	return c
}
