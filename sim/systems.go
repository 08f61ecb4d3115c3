package sim

import (
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/world"
)

// TickSystem runs Step once per tick and reports score and outcome changes to
// Sink after the tick's mutations have been applied. It stops itself once the
// session has ended.
type TickSystem struct {
	State *State
	Sink  Sink

	LastReport Report
}

func (t *TickSystem) Execute(frame *sched.Frame) {
	report := t.State.Step()
	t.LastReport = report

	if report.ScoreDelta > 0 && t.Sink != nil {
		score := t.State.Score()
		frame.Commands.Defer(func() { t.Sink.ScoreChanged(score) })
	}

	if report.Outcome.Terminal() {
		if t.Sink != nil {
			outcome := report.Outcome
			frame.Commands.Defer(func() { t.Sink.Finished(outcome) })
		}
		frame.Stop()
	}
}

// FireSystem makes a random enemy fire once per run. The projectile is queued
// on the frame's commands. It stops once the session has ended.
type FireSystem struct {
	State *State

	Shots int
}

func (f *FireSystem) Execute(frame *sched.Frame) {
	if f.State.Outcome().Terminal() {
		frame.Stop()
		return
	}

	rect, ok := f.State.Aim()
	if !ok {
		return
	}
	frame.Commands.Spawn(world.EnemyShot, rect)
	f.Shots++
}

// Schedule registers the tick and fire activities for st on s at the cadences
// from st's config.
func Schedule(s *sched.Scheduler, st *State, sink Sink) (*TickSystem, *FireSystem) {
	tick := &TickSystem{State: st, Sink: sink}
	fire := &FireSystem{State: st}

	timing := st.Config().Timing
	s.Register("tick", tick, timing.Tick)
	s.Register("enemy_fire", fire, timing.EnemyFire)

	return tick, fire
}
