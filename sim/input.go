package sim

import (
	"time"

	"github.com/plus3/invaders/world"
)

// Key is a logical key event.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "none"
	}
}

// HandleKey applies one key event at game time now and reports whether it
// changed anything. Unknown keys, fire presses inside the cooldown and any
// input after the session ended are ignored.
func (s *State) HandleKey(key Key, now time.Duration) bool {
	if s.outcome.Terminal() {
		return false
	}

	player := s.world.Player()
	maxX := s.world.Width() - player.Rect.W

	switch key {
	case KeyLeft:
		x := max(0, player.Rect.X-s.cfg.Player.Step)
		moved := x != player.Rect.X
		player.Rect.X = x
		return moved

	case KeyRight:
		x := min(maxX, player.Rect.X+s.cfg.Player.Step)
		moved := x != player.Rect.X
		player.Rect.X = x
		return moved

	case KeyFire:
		if s.hasShot && now-s.lastShot < s.cfg.Timing.ShotCooldown {
			return false
		}
		shot := s.cfg.PlayerShot
		s.world.Spawn(world.PlayerShot, world.Rect{
			X: player.Rect.CenterX() - shot.Width/2,
			Y: player.Rect.Y,
			W: shot.Width,
			H: shot.Height,
		})
		s.lastShot = now
		s.hasShot = true
		return true
	}

	return false
}
