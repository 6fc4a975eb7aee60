package life

import (
	"github.com/aquilax/go-perlin"

	"gol-ca/internal/core"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
	perlinScale = 0.12
)

// fillSoup seeds g randomly according to the configured soup generator.
func fillSoup(g *core.ByteGrid, seed int64, soup string, density float64) {
	rng := core.NewRNG(seed)
	if soup != SoupPerlin {
		rng.FillDensity(g, density)
		return
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			// Noise2D is roughly in [-1, 1]; bias the per-cell chance so the
			// board averages to density while clustering into blobs.
			v := (noise.Noise2D(float64(x)*perlinScale, float64(y)*perlinScale) + 1) / 2
			g.Set(x, y, rng.Chance(density*2*v))
		}
	}
}
