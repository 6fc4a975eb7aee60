package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"gol-ca/internal/render"
	"gol-ca/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	seeds := flag.Int("seeds", 32, "number of random soups to run")
	first := flag.Int64("first", 1, "first seed; seeds run consecutively")
	steps := flag.Int("steps", 2000, "maximum generations per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent soups")
	w := flag.Int("w", 80, "board width in cells")
	h := flag.Int("h", 60, "board height in cells")
	density := flag.Float64("density", 0.25, "live-cell density")
	soup := flag.String("soup", life.SoupUniform, "soup generator: uniform or perlin")
	pngDir := flag.String("png", "", "directory for final-board PNG snapshots")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := life.FromMap(map[string]string{
		"w":       fmt.Sprint(*w),
		"h":       fmt.Sprint(*h),
		"density": fmt.Sprint(*density),
		"soup":    *soup,
	})

	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0o755); err != nil {
			log.Fatalf("create png dir: %v", err)
		}
	}

	log.Printf("running %d soups (%d workers, %d steps, %dx%d %s)", *seeds, *workers, *steps, cfg.Width, cfg.Height, cfg.Soup)
	start := time.Now()

	results := make([]censusResult, *seeds)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i := 0; i < *seeds; i++ {
		seed := *first + int64(i)
		g.Go(func() error {
			l := life.NewWithConfig(cfg)
			l.Reset(seed)
			res, err := census(gctx, seed, l, *steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			if *pngDir != "" {
				if err := writeSnapshot(*pngDir, res, l); err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].generation != results[j].generation {
			return results[i].generation > results[j].generation
		}
		return results[i].seed < results[j].seed
	})

	counts := map[Outcome]int{}
	for _, r := range results {
		counts[r.outcome]++
		fmt.Println(r)
	}
	fmt.Printf("\n%d soups in %s: extinct=%d still=%d cycle=%d unsettled=%d\n",
		len(results), time.Since(start).Round(time.Millisecond),
		counts[OutcomeExtinct], counts[OutcomeStill], counts[OutcomeCycle], counts[OutcomeUnsettled])
}

func writeSnapshot(dir string, res censusResult, l *life.Life) error {
	img := render.Snapshot(res.cells, l.Size())
	if img == nil {
		return fmt.Errorf("snapshot size mismatch")
	}
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("seed-%d.png", res.seed)))
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
