package sim

import (
	"math"

	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/world"
)

// Autopilot plays headless sessions: each run it steps the player toward the
// lowest enemy and fires once underneath it. It feeds keys through HandleKey
// like a real player would.
type Autopilot struct {
	State *State

	Presses int
}

func (a *Autopilot) Execute(frame *sched.Frame) {
	if a.State.Outcome().Terminal() {
		frame.Stop()
		return
	}

	target, ok := a.target()
	if !ok {
		return
	}

	player := a.State.World().Player().Rect
	half := a.State.Config().Player.Step / 2

	key := KeyFire
	switch {
	case target < player.CenterX()-half:
		key = KeyLeft
	case target > player.CenterX()+half:
		key = KeyRight
	}

	if a.State.HandleKey(key, frame.Elapsed) {
		a.Presses++
	}
}

// target returns the centre x of the lowest enemy, preferring the one closest
// to the player on ties.
func (a *Autopilot) target() (float64, bool) {
	px := a.State.World().Player().Rect.CenterX()

	var best *world.Entity
	for e := range a.State.World().Each(world.Enemy) {
		if best == nil || e.Rect.Bottom() > best.Rect.Bottom() ||
			(e.Rect.Bottom() == best.Rect.Bottom() &&
				math.Abs(e.Rect.CenterX()-px) < math.Abs(best.Rect.CenterX()-px)) {
			best = e
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Rect.CenterX(), true
}
