package main

import (
	"context"
	"crypto/md5"
	"fmt"

	"gol-ca/internal/sims/life"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeExtinct   Outcome = "extinct"
	OutcomeStill     Outcome = "still"
	OutcomeCycle     Outcome = "cycle"
	OutcomeUnsettled Outcome = "unsettled"
)

type censusResult struct {
	seed       int64
	outcome    Outcome
	generation int
	period     int
	population int
	peak       int
	cells      []uint8
}

func (r censusResult) String() string {
	s := fmt.Sprintf("seed=%-6d %-9s gen=%-5d pop=%-5d peak=%-5d", r.seed, r.outcome, r.generation, r.population, r.peak)
	if r.outcome == OutcomeCycle {
		s += fmt.Sprintf(" period=%d", r.period)
	}
	return s
}

// census advances l until the board dies, repeats an earlier state, or
// maxSteps generations pass. Repetition is detected by hashing the active
// buffer after every generation.
func census(ctx context.Context, seed int64, l *life.Life, maxSteps int) (censusResult, error) {
	res := censusResult{seed: seed}
	seen := map[[md5.Size]byte]int{md5.Sum(l.Cells()): l.Generation()}
	res.peak = l.Population()

	for i := 0; i < maxSteps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		l.Step()
		pop := l.Population()
		if pop > res.peak {
			res.peak = pop
		}
		if pop == 0 {
			res.outcome = OutcomeExtinct
			break
		}
		sum := md5.Sum(l.Cells())
		if prev, ok := seen[sum]; ok {
			res.period = l.Generation() - prev
			res.outcome = OutcomeCycle
			if res.period == 1 {
				res.outcome = OutcomeStill
			}
			break
		}
		seen[sum] = l.Generation()
	}
	if res.outcome == "" {
		res.outcome = OutcomeUnsettled
	}
	res.generation = l.Generation()
	res.population = l.Population()
	res.cells = append([]uint8(nil), l.Cells()...)
	return res, nil
}
