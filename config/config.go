// Package config provides YAML-based configuration for the invaders game:
// screen size, entity geometry, speeds, cadences and asset locations.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a game session.
type Config struct {
	Screen     Screen     `yaml:"screen"`
	Player     Player     `yaml:"player"`
	PlayerShot Projectile `yaml:"player_shot"`
	Enemy      Enemy      `yaml:"enemy"`
	EnemyShot  Projectile `yaml:"enemy_shot"`
	Formation  Formation  `yaml:"formation"`
	Timing     Timing     `yaml:"timing"`
	Input      Input      `yaml:"input"`
	Assets     Assets     `yaml:"assets"`

	// Seed for the formation layout and enemy fire. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// Screen is the logical surface size in pixels. Zero values mean
// "use the monitor size at startup".
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Player defines the player ship.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"`   // horizontal move per key event
	Margin float64 `yaml:"margin"` // gap between the ship and the bottom edge
}

// Projectile defines either kind of projectile.
type Projectile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // pixels per tick
}

// Enemy defines a single invader.
type Enemy struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // pixels per tick
}

// Formation defines the initial enemy grid.
type Formation struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"` // probability that a cell is populated
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	GapX    float64 `yaml:"gap_x"`
	GapY    float64 `yaml:"gap_y"`
}

// Timing holds the fixed cadences.
type Timing struct {
	Tick         time.Duration `yaml:"tick"`
	EnemyFire    time.Duration `yaml:"enemy_fire"`
	ShotCooldown time.Duration `yaml:"shot_cooldown"`
}

// Input holds key auto-repeat settings, expressed in update ticks.
type Input struct {
	RepeatDelay    int `yaml:"repeat_delay"`
	RepeatInterval int `yaml:"repeat_interval"`
}

// Assets names the sprite images relative to Dir.
type Assets struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Enemy      string `yaml:"enemy"`
	Projectile string `yaml:"projectile"`
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}

	sizes := []struct {
		name string
		w, h float64
	}{
		{"player", c.Player.Width, c.Player.Height},
		{"player_shot", c.PlayerShot.Width, c.PlayerShot.Height},
		{"enemy", c.Enemy.Width, c.Enemy.Height},
		{"enemy_shot", c.EnemyShot.Width, c.EnemyShot.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %gx%g", ErrInvalid, s.name, s.w, s.h)
		}
	}

	if c.Screen.Width > 0 && float64(c.Screen.Width) < c.Player.Width {
		return fmt.Errorf("%w: screen width %d narrower than the player", ErrInvalid, c.Screen.Width)
	}
	if c.Screen.Height > 0 && float64(c.Screen.Height) < c.Player.Height+c.Player.Margin {
		return fmt.Errorf("%w: screen height %d shorter than the player and its margin", ErrInvalid, c.Screen.Height)
	}

	if c.Player.Step <= 0 || c.PlayerShot.Speed <= 0 || c.Enemy.Speed <= 0 || c.EnemyShot.Speed <= 0 {
		return fmt.Errorf("%w: step and speeds must be positive", ErrInvalid)
	}

	if c.Formation.Rows < 0 || c.Formation.Cols < 0 {
		return fmt.Errorf("%w: formation %dx%d", ErrInvalid, c.Formation.Rows, c.Formation.Cols)
	}
	if c.Formation.Density < 0 || c.Formation.Density > 1 {
		return fmt.Errorf("%w: formation density %g not in [0,1]", ErrInvalid, c.Formation.Density)
	}

	if c.Timing.Tick <= 0 || c.Timing.EnemyFire <= 0 {
		return fmt.Errorf("%w: tick and enemy_fire must be positive", ErrInvalid)
	}
	if c.Timing.ShotCooldown < 0 {
		return fmt.Errorf("%w: negative shot_cooldown", ErrInvalid)
	}

	if c.Input.RepeatDelay < 0 || c.Input.RepeatInterval <= 0 {
		return fmt.Errorf("%w: repeat_delay must be >= 0 and repeat_interval > 0", ErrInvalid)
	}

	return nil
}

// WithScreen returns a copy of c with the screen size replaced.
func (c Config) WithScreen(width, height int) Config {
	c.Screen.Width = width
	c.Screen.Height = height
	return c
}
