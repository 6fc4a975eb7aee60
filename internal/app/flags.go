package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim  string
	TPS  int
	Seed int64

	Width    int
	Height   int
	CellSize int
	Tick     time.Duration
	Paused   bool
	Density  float64
	Soup     string

	HUDWidth int
	Grid     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		TPS:      60,
		Width:    80,
		Height:   60,
		CellSize: 10,
		Tick:     time.Second,
		Density:  0.25,
		Soup:     "uniform",
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 restores the reference pattern)")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random soups")
	fs.StringVar(&c.Soup, "soup", c.Soup, "random soup generator: uniform or perlin")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw cell borders")
}

// SimOptions converts the board settings into the factory map understood by
// the registered sims.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"cell":    strconv.Itoa(c.CellSize),
		"tick":    c.Tick.String(),
		"paused":  strconv.FormatBool(c.Paused),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"soup":    c.Soup,
	}
}

// FrameTime returns the duration of one frame at the configured TPS.
func (c *Config) FrameTime() time.Duration {
	tps := c.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
