// Package game plugs a session into ebiten: it turns key presses into input
// events, drives the scheduler one ebiten tick at a time and draws the world.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/render"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

// Overlay is drawn on top of the game, such as the debug inspector.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	CapturesKeyboard() bool
}

// Options wires a Game together.
type Options struct {
	State     *sim.State
	Scheduler *sched.Scheduler
	Renderer  *render.Renderer
	HUD       *render.HUD
	Overlay   Overlay
	Logger    *log.Logger
}

// Game implements ebiten.Game.
type Game struct {
	state     *sim.State
	scheduler *sched.Scheduler
	renderer  *render.Renderer
	hud       *render.HUD
	overlay   Overlay
	logger    *log.Logger

	input  config.Input
	width  int
	height int

	keys []sim.Key
}

// New returns a game whose logical size is the session's screen size.
func New(opts Options) *Game {
	cfg := opts.State.Config()
	return &Game{
		state:     opts.State,
		scheduler: opts.Scheduler,
		renderer:  opts.Renderer,
		hud:       opts.HUD,
		overlay:   opts.Overlay,
		logger:    opts.Logger,
		input:     cfg.Input,
		width:     cfg.Screen.Width,
		height:    cfg.Screen.Height,
	}
}

func (g *Game) Update() error {
	if quitRequested() {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	g.keys = g.keys[:0]
	if g.overlay == nil || !g.overlay.CapturesKeyboard() {
		g.keys = pollKeys(g.keys, g.input)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.tick(g.keys, dt)

	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

// tick applies this frame's key events, then advances the game clock by dt.
func (g *Game) tick(keys []sim.Key, dt time.Duration) {
	now := g.scheduler.Now()
	for _, key := range keys {
		if g.state.HandleKey(key, now) {
			g.logger.Debug("key", "key", key, "player_x", g.state.World().Player().Rect.X)
		}
	}
	g.scheduler.Advance(dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.World())
	g.hud.Draw(screen)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
