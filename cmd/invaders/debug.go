//go:build !js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/debugui"
	"github.com/plus3/invaders/game"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

func newOverlay(cfg config.Config, state *sim.State, scheduler *sched.Scheduler, logger *log.Logger) game.Overlay {
	logger.Debug("debug overlay enabled")
	return debugui.New(windowTitle, cfg.Screen.Width, cfg.Screen.Height, state, scheduler)
}
