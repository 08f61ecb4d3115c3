//go:build js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/game"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

func newOverlay(_ config.Config, _ *sim.State, _ *sched.Scheduler, logger *log.Logger) game.Overlay {
	logger.Warn("debug overlay is not available in the browser")
	return nil
}
