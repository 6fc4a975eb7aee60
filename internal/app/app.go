//go:build ebiten

package app

import (
	"time"

	"gol-ca/internal/render"
	"gol-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an interactive session to the ebiten.Game interface.
type Game struct {
	sim     Session
	painter *render.CellPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	frame time.Duration
	seed  int64
}

// New constructs a Game for the provided session.
func New(sim Session, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewCellPainter(sim.CellSize()),
		overlay: ui.NewOverlay(sim.Size(), sim.CellSize(), cfg.Grid),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		frame:   cfg.FrameTime(),
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles input and feeds one frame of time to the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.sim.OnPointerPrimary(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.OnPointerSecondary()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.sim.OnTick(g.frame)
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.RenderSnapshot())
	g.overlay.Draw(screen)
	w, h := g.boardSize()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.boardSize()
	return w + g.hud.Width(), h
}

func (g *Game) boardSize() (int, int) {
	s := g.sim.Size()
	return s.W * g.sim.CellSize(), s.H * g.sim.CellSize()
}
