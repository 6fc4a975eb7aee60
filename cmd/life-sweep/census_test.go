package main

import (
	"context"
	"testing"

	"gol-ca/internal/sims/life"
)

func board(w, h int, p life.Pattern) *life.Life {
	l := life.New(w, h)
	l.Buffers().Reset()
	l.Place(p, 0, 0)
	return l
}

func TestCensusDetectsBlinkerPeriod(t *testing.T) {
	blinker, _ := life.LookupPattern("blinker")
	l := board(10, 10, nil)
	l.Place(blinker, 4, 4)

	res, err := census(context.Background(), 1, l, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.outcome != OutcomeCycle || res.period != 2 {
		t.Fatalf("outcome=%s period=%d", res.outcome, res.period)
	}
	if res.population != 3 || res.peak != 3 {
		t.Fatalf("population=%d peak=%d", res.population, res.peak)
	}
}

func TestCensusDetectsStillLife(t *testing.T) {
	block, _ := life.LookupPattern("block")
	l := board(10, 10, nil)
	l.Place(block, 3, 3)
	res, err := census(context.Background(), 2, l, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.outcome != OutcomeStill || res.generation != 1 {
		t.Fatalf("outcome=%s generation=%d", res.outcome, res.generation)
	}
}

func TestCensusDetectsExtinction(t *testing.T) {
	l := board(10, 10, life.Pattern{{X: 5, Y: 5}})
	res, err := census(context.Background(), 3, l, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.outcome != OutcomeExtinct || res.generation != 1 || res.population != 0 {
		t.Fatalf("result %+v", res)
	}
}

func TestCensusGliderDiesAtBoundary(t *testing.T) {
	// On a bounded board a glider runs into the corner and becomes a block.
	glider, _ := life.LookupPattern("glider")
	l := board(12, 12, nil)
	l.Place(glider, 1, 1)
	res, err := census(context.Background(), 4, l, 200)
	if err != nil {
		t.Fatal(err)
	}
	if res.outcome != OutcomeStill || res.population != 4 {
		t.Fatalf("outcome=%s population=%d", res.outcome, res.population)
	}
}

func TestCensusHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := board(10, 10, nil)
	l.Reset(5)
	if _, err := census(ctx, 5, l, 100); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCensusUnsettled(t *testing.T) {
	glider, _ := life.LookupPattern("glider")
	l := board(40, 40, nil)
	l.Place(glider, 1, 1)
	res, err := census(context.Background(), 6, l, 8)
	if err != nil {
		t.Fatal(err)
	}
	if res.outcome != OutcomeUnsettled || res.generation != 8 {
		t.Fatalf("outcome=%s generation=%d", res.outcome, res.generation)
	}
}
