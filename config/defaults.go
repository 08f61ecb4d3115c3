package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/invaders.yaml.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:  1024,
			Height: 768,
		},
		Player: Player{
			Width:  50,
			Height: 50,
			Step:   10,
			Margin: 10,
		},
		PlayerShot: Projectile{
			Width:  20,
			Height: 20,
			Speed:  7,
		},
		Enemy: Enemy{
			Width:  60,
			Height: 45,
			Speed:  3,
		},
		EnemyShot: Projectile{
			Width:  10,
			Height: 10,
			Speed:  5,
		},
		Formation: Formation{
			Rows:    4,
			Cols:    8,
			Density: 0.7,
			OriginX: 40,
			OriginY: 40,
			GapX:    20,
			GapY:    20,
		},
		Timing: Timing{
			Tick:         33 * time.Millisecond,
			EnemyFire:    2 * time.Second,
			ShotCooldown: time.Second,
		},
		Input: Input{
			RepeatDelay:    30,
			RepeatInterval: 2,
		},
		Assets: Assets{
			Dir:        "static",
			Player:     "player.png",
			Enemy:      "enemy.png",
			Projectile: "bullet.png",
		},
	}
}
