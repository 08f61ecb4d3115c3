package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/invaders/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	// An empty document leaves Default untouched; the embedded file must agree with it.
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`
screen:
  width: 640
timing:
  tick: 20ms
formation:
  density: 1
seed: 7
`))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Screen.Width)
	assert.Equal(t, 768, cfg.Screen.Height)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.Tick)
	assert.Equal(t, 2*time.Second, cfg.Timing.EnemyFire)
	assert.Equal(t, 1.0, cfg.Formation.Density)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 50.0, cfg.Player.Width)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := config.Parse([]byte("screen: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative screen", func(c *config.Config) { c.Screen.Width = -1 }},
		{"screen narrower than player", func(c *config.Config) { c.Screen.Width = 40 }},
		{"screen shorter than player", func(c *config.Config) { c.Screen.Height = 55 }},
		{"zero player width", func(c *config.Config) { c.Player.Width = 0 }},
		{"zero enemy height", func(c *config.Config) { c.Enemy.Height = 0 }},
		{"zero shot speed", func(c *config.Config) { c.PlayerShot.Speed = 0 }},
		{"zero step", func(c *config.Config) { c.Player.Step = 0 }},
		{"density above one", func(c *config.Config) { c.Formation.Density = 1.5 }},
		{"negative rows", func(c *config.Config) { c.Formation.Rows = -2 }},
		{"zero tick", func(c *config.Config) { c.Timing.Tick = 0 }},
		{"zero enemy fire", func(c *config.Config) { c.Timing.EnemyFire = 0 }},
		{"negative cooldown", func(c *config.Config) { c.Timing.ShotCooldown = -time.Second }},
		{"zero repeat interval", func(c *config.Config) { c.Input.RepeatInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	t.Run("zero screen means monitor size", func(t *testing.T) {
		assert.NoError(t, config.Default().WithScreen(0, 0).Validate())
	})
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("enemy:\n  speed: 4\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4.0, cfg.Enemy.Speed)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values are an error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("formation:\n  density: 2\n"), 0o644))

		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}
