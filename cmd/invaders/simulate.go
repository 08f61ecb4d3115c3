package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
	"github.com/plus3/invaders/world"
)

// Screen size used headless when the config leaves it to the monitor.
const (
	headlessWidth  = 1024
	headlessHeight = 768
)

var (
	flagTimeout     time.Duration
	flagMaxGameTime time.Duration
	flagRealtime    bool
	flagAutopilot   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session and print a summary",
	Long: `Run the simulation without a window. The autopilot steers the ship
under the lowest enemy and fires; without it the formation is left alone
until it lands.

By default the game clock runs as fast as possible. --realtime paces it
against the wall clock instead.

Examples:
  invaders simulate
  invaders simulate --seed 7 --autopilot=false
  invaders simulate --realtime --timeout 2m`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagTimeout, "timeout", time.Minute, "Wall-clock limit")
	simulateCmd.Flags().DurationVar(&flagMaxGameTime, "max-game-time", 30*time.Minute, "Game-clock limit")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the game clock against the wall clock")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the autopilot play")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if cfg.Screen.Width == 0 || cfg.Screen.Height == 0 {
		cfg = cfg.WithScreen(headlessWidth, headlessHeight)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	summary, err := simulate(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Render())
	return nil
}

// simulate plays one session headless and returns its summary. Hitting the
// wall-clock deadline or the game-clock limit ends the session early without
// an error.
func simulate(ctx context.Context, cfg config.Config, logger *log.Logger) (*Summary, error) {
	cfg.Seed = sim.ResolveSeed(cfg.Seed)
	state := sim.New(cfg, sim.NewRand(cfg.Seed))
	scheduler := sched.New(state.World())
	_, fire := sim.Schedule(scheduler, state, sim.NewLogSink(logger))

	var pilot *sim.Autopilot
	if flagAutopilot {
		pilot = &sim.Autopilot{State: state}
		scheduler.Register("autopilot", pilot, cfg.Timing.Tick)
	}

	summary := &Summary{
		Seed:    cfg.Seed,
		Enemies: state.World().Count(world.Enemy),
	}

	logger.Info("simulation started", "seed", cfg.Seed, "enemies", summary.Enemies, "autopilot", pilot != nil, "realtime", flagRealtime)
	start := time.Now()

	if flagRealtime {
		ctx, cancel := context.WithTimeout(ctx, flagMaxGameTime)
		defer cancel()
		if err := scheduler.Run(ctx, cfg.Timing.Tick); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	} else {
		for !scheduler.Done() && scheduler.Now() < flagMaxGameTime {
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					break
				}
				return nil, err
			}
			scheduler.Advance(cfg.Timing.Tick)
		}
	}

	summary.WallTime = time.Since(start)
	summary.GameTime = scheduler.Now()
	summary.Score = state.Score()
	summary.Outcome = state.Outcome()
	summary.Remaining = state.World().Count(world.Enemy)
	summary.EnemyShots = fire.Shots
	if pilot != nil {
		summary.KeyPresses = pilot.Presses
	}
	summary.Activities = scheduler.Stats().Activities

	logger.Info("simulation finished", "outcome", summary.Outcome, "score", summary.Score, "game_time", summary.GameTime)
	return summary, nil
}
