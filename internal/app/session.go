package app

import (
	"fmt"
	"iter"
	"time"

	"gol-ca/internal/core"
)

// Session is the interactive surface a sim must offer to be driven by Game.
type Session interface {
	core.Sim
	CellSize() int
	OnPointerPrimary(px, py float64)
	OnPointerSecondary()
	OnTick(dt time.Duration) bool
	StepOnce()
	Clear()
	RenderSnapshot() iter.Seq[core.Cell]
}

// AsSession checks that sim can be driven interactively.
func AsSession(sim core.Sim) (Session, error) {
	s, ok := sim.(Session)
	if !ok {
		return nil, fmt.Errorf("sim %q does not support interactive sessions", sim.Name())
	}
	return s, nil
}
