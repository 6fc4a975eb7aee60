package core

import (
	"testing"
	"time"
)

func TestClockFiresAtIntervalAndResets(t *testing.T) {
	c := NewClock(time.Second)
	if c.Advance(400 * time.Millisecond) {
		t.Fatal("fired before interval")
	}
	if c.Advance(500 * time.Millisecond) {
		t.Fatal("fired before interval")
	}
	if !c.Advance(300 * time.Millisecond) {
		t.Fatal("expected tick once interval reached")
	}
	if c.Accumulated() != 0 {
		t.Fatalf("surplus must be discarded, accumulated=%v", c.Accumulated())
	}
}

func TestClockDiscardsSurplus(t *testing.T) {
	c := NewClock(time.Second)
	if !c.Advance(1900 * time.Millisecond) {
		t.Fatal("expected tick")
	}
	if c.Advance(900 * time.Millisecond) {
		t.Fatal("surplus from previous tick carried forward")
	}
}

func TestClockPausedDoesNotAccumulate(t *testing.T) {
	c := NewClock(time.Second)
	c.Toggle()
	for i := 0; i < 10; i++ {
		if c.Advance(time.Second) {
			t.Fatal("paused clock fired")
		}
	}
	if c.Accumulated() != 0 {
		t.Fatalf("paused clock accumulated %v", c.Accumulated())
	}
	c.Toggle()
	if !c.Running() {
		t.Fatal("double toggle should restore running")
	}
	if !c.Advance(time.Second) {
		t.Fatal("resumed clock should fire")
	}
}

func TestClockDefaultsInterval(t *testing.T) {
	c := NewClock(0)
	if c.Interval() != DefaultTickInterval {
		t.Fatalf("interval=%v, expected %v", c.Interval(), DefaultTickInterval)
	}
}
