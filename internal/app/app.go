//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifelike/internal/core"
	"lifelike/internal/render"
	"lifelike/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a stepping engine to the ebiten.Game interface.
type Game struct {
	engine  core.Engine
	painter *render.GridPainter
	status  *ui.Status
	palette []color.RGBA

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
}

// New constructs a Game for the provided engine.
func New(engine core.Engine, scale int, seed int64) *Game {
	return &Game{
		engine:  engine,
		painter: render.NewGridPainter(engine.NumX(), engine.NumY()),
		status:  ui.NewStatus(),
		palette: render.Palette(engine.MaxState()),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reseeds the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Reset(seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.engine.Step()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Cells(), g.palette, g.scale)
	g.status.Draw(screen, g.engine.Name(), g.generation, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.NumX() * g.scale, g.engine.NumY() * g.scale
}
