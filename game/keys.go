package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/sim"
)

var bindings = []struct {
	key ebiten.Key
	sim sim.Key
}{
	{ebiten.KeyArrowLeft, sim.KeyLeft},
	{ebiten.KeyArrowRight, sim.KeyRight},
	{ebiten.KeySpace, sim.KeyFire},
}

// repeats reports whether a key held for duration ticks emits an event this
// tick: on the first tick, then every interval ticks once delay ticks passed.
func repeats(duration int, input config.Input) bool {
	if duration == 1 {
		return true
	}
	if duration <= input.RepeatDelay || input.RepeatInterval <= 0 {
		return false
	}
	return (duration-input.RepeatDelay)%input.RepeatInterval == 0
}

// pollKeys appends the key events produced this tick to dst.
func pollKeys(dst []sim.Key, input config.Input) []sim.Key {
	for _, b := range bindings {
		if repeats(inpututil.KeyPressDuration(b.key), input) {
			dst = append(dst, b.sim)
		}
	}
	return dst
}
