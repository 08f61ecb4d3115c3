// invaders is an arcade shooter: a ship at the bottom of the screen fires at a
// descending formation of enemies that fire back.
//
// Usage:
//
//	invaders [play]          - Open the game window (default)
//	invaders simulate        - Run a headless session and print a summary
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ./configs/invaders.yaml, then built-in)
//	--seed <value>      - RNG seed for the formation and enemy fire (0 = random)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plus3/invaders/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the formation before it lands",
	Long: `Invaders is a fixed-timestep arcade shooter rendered with ebiten.

Controls:
  Left/Right  - Move the ship
  Space       - Fire (one shot per second)
  Esc         - Quit

Examples:
  invaders
  invaders play --seed 42 --debug
  invaders simulate --timeout 30s`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Output is logfmt when stderr is not a
// terminal.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger, nil
}

// loadConfig loads the config and applies the seed flag.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logger.Debug("config loaded", "path", flagConfig, "seed", cfg.Seed)
	return cfg, nil
}
