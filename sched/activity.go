package sched

import (
	"time"

	"github.com/plus3/invaders/world"
)

// Activity is a unit of recurring work. Implementations keep whatever state
// they need between runs.
type Activity interface {
	Execute(frame *Frame)
}

// ActivityFunc adapts a plain function to Activity.
type ActivityFunc func(frame *Frame)

func (f ActivityFunc) Execute(frame *Frame) { f(frame) }

// Frame is handed to an activity for one run.
type Frame struct {
	// Elapsed is the game clock at which this run was due.
	Elapsed time.Duration

	World *world.World

	// Commands is flushed into World as soon as the activity returns.
	Commands *world.Commands

	stopped bool
}

// Stop cancels the activity's recurrence after the current run.
func (f *Frame) Stop() {
	f.stopped = true
}
