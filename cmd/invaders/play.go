package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/invaders/assets"
	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/game"
	"github.com/plus3/invaders/render"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
	"github.com/plus3/invaders/world"
)

const windowTitle = "Invaders"

var (
	flagAssets string
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding the sprite images (default: config assets.dir)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the ImGui inspector")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	cfg = resolveScreen(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	pipeline, err := render.NewPipeline()
	if err != nil {
		logger.Error("renderer unavailable", "error", err)
		return err
	}
	defer pipeline.Dispose()

	cfg.Seed = sim.ResolveSeed(cfg.Seed)
	state := sim.New(cfg, sim.NewRand(cfg.Seed))
	scheduler := sched.New(state.World())

	hud := render.NewHUD()
	sim.Schedule(scheduler, state, sim.MultiSink{hud, sim.NewLogSink(logger)})

	atlas := render.NewAtlas(spriteFS(cfg.Assets.Dir, logger), cfg.Assets, logger)

	opts := game.Options{
		State:     state,
		Scheduler: scheduler,
		Renderer:  render.NewRenderer(pipeline, atlas),
		HUD:       hud,
		Logger:    logger,
	}

	if flagDebug {
		opts.Overlay = newOverlay(cfg, state, scheduler, logger)
	}
	if opts.Overlay == nil {
		ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
		ebiten.SetWindowTitle(windowTitle)
	}

	logger.Info("starting game",
		"seed", cfg.Seed,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"enemies", state.World().Count(world.Enemy),
	)

	if err := ebiten.RunGame(game.New(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	logger.Info("game closed", "score", state.Score(), "outcome", state.Outcome())
	return nil
}

// resolveScreen replaces a zero screen size with the monitor size.
func resolveScreen(cfg config.Config) config.Config {
	if cfg.Screen.Width > 0 && cfg.Screen.Height > 0 {
		return cfg
	}
	w, h := ebiten.Monitor().Size()
	if cfg.Screen.Width > 0 {
		w = cfg.Screen.Width
	}
	if cfg.Screen.Height > 0 {
		h = cfg.Screen.Height
	}
	return cfg.WithScreen(w, h)
}

// spriteFS returns dir when it exists and the built-in sprites otherwise.
func spriteFS(dir string, logger *log.Logger) fs.FS {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir)
	}
	logger.Info("asset directory not found, using built-in sprites", "dir", dir)
	return assets.FS()
}
