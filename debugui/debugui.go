//go:build !js

// Package debugui draws a Dear ImGui inspector over the game: session state,
// per-kind pool usage, scheduler timings and a live entity table.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

// Overlay owns the ImGui backend and the inspector windows.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend

	state     *sim.State
	scheduler *sched.Scheduler

	timer   *FrameTimer
	stats   *PerformanceStats
	browser *EntityBrowser
}

// New creates the ImGui backend and the game window. It must be called
// before ebiten.RunGame.
func New(title string, width, height int, state *sim.State, scheduler *sched.Scheduler) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		state:     state,
		scheduler: scheduler,
		timer:     NewFrameTimer(),
		stats:     NewPerformanceStats(120),
		browser:   NewEntityBrowser(50),
	}
}

// Update builds this frame's windows and samples the wall time since the
// previous Update for the frame graph.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	o.stats.Render(o.state, o.scheduler, o.timer.Delta())
	o.browser.Render(o.state.World())
	o.backend.EndFrame()
}

// Draw paints the windows built by the last Update.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// CapturesKeyboard reports whether an ImGui widget has keyboard focus.
func (o *Overlay) CapturesKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
