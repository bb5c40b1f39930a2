//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"pengine/internal/core"
	"pengine/internal/render"
	"pengine/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the particle world and engine to the ebiten.Game interface.
// Input, spawning and drawing all happen between engine passes, so the
// world is never observed while a pass is in flight.
type Game struct {
	world   *sim.World
	engine  *sim.Engine
	painter *render.PointPainter
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game around the provided world.
func New(w *sim.World, tps int, seed int64) *Game {
	b := w.Bounds()
	return &Game{
		world:    w,
		engine:   sim.NewEngine(w),
		painter:  render.NewPointPainter(int(b.W), int(b.H)),
		clock:    core.NewFixedStep(tps),
		onColor:  color.RGBA{R: 0xff, G: 0xff, A: 0xff},
		offColor: color.Black,
		seed:     seed,
	}
}

// Update handles per-frame input and advances the simulation by however
// many fixed steps the frame time covers.
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
		g.world.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.world.Reset(time.Now().UnixNano())
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.world.SpawnBurst(core.Vec2{X: float64(x), Y: float64(y)})
	}

	steps := g.clock.Advance()
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
		}
	}
	g.tickOnce = false

	for i := 0; i < steps; i++ {
		g.engine.Step()
	}
	return nil
}

// Draw renders the live particles as a point cloud.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Batches(), g.onColor, g.offColor)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("particles: %d", g.world.Alive()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.world.Bounds()
	return int(b.W), int(b.H)
}
