package sim_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
	"github.com/plus3/invaders/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledSession(t *testing.T) {
	t.Run("empty formation wins and both activities stop", func(t *testing.T) {
		st := newEmptyState(t)
		s := sched.New(st.World())
		sink := &recordingSink{}
		tick, _ := sim.Schedule(s, st, sink)

		s.Advance(33 * time.Millisecond)
		assert.Equal(t, sim.Won, tick.LastReport.Outcome)
		assert.Equal(t, []sim.Outcome{sim.Won}, sink.outcomes)
		assert.False(t, s.Done(), "fire activity notices on its next run")

		s.SetMaxCatchUp(100)
		s.Advance(2 * time.Second)
		assert.True(t, s.Done())

		stats := s.Stats()
		assert.Equal(t, int64(1), stats.Activities[0].ExecutionCount)
		assert.Equal(t, []sim.Outcome{sim.Won}, sink.outcomes, "finished is reported once")
	})

	t.Run("score changes reach the sink after the tick", func(t *testing.T) {
		st := newEmptyState(t)
		spawnEnemy(st, 100, 100)
		spawnEnemy(st, 600, 100)
		st.World().Spawn(world.PlayerShot, world.Rect{X: 120, Y: 130, W: 20, H: 20})

		s := sched.New(st.World())
		sink := &recordingSink{}
		sim.Schedule(s, st, sink)

		s.Advance(33 * time.Millisecond)
		assert.Equal(t, []int{10}, sink.scores)
		assert.Empty(t, sink.outcomes)
	})

	t.Run("enemy fire is queued and flushed", func(t *testing.T) {
		st := newEmptyState(t)
		spawnEnemy(st, 100, 100)

		s := sched.New(st.World())
		_, fire := sim.Schedule(s, st, nil)

		s.SetMaxCatchUp(100)
		s.Advance(2 * time.Second)
		assert.Equal(t, 1, fire.Shots)
		assert.Equal(t, 1, st.World().Count(world.EnemyShot))
	})

	t.Run("autopilot session runs to an outcome", func(t *testing.T) {
		st := sim.New(config.Default(), sim.NewRand(11))
		s := sched.New(st.World())
		sim.Schedule(s, st, nil)
		pilot := &sim.Autopilot{State: st}
		s.Register("autopilot", pilot, st.Config().Timing.Tick)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for !s.Done() && ctx.Err() == nil {
			s.Advance(st.Config().Timing.Tick)
		}

		require.True(t, s.Done())
		assert.True(t, st.Outcome().Terminal())
		assert.Positive(t, pilot.Presses)
	})
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sink := sim.MultiSink{sim.NewLogSink(logger), &recordingSink{}}

	sink.ScoreChanged(30)
	sink.Finished(sim.Lost)

	out := buf.String()
	assert.Contains(t, out, "score=30")
	assert.Contains(t, out, "outcome=lost")
	assert.Contains(t, out, "Game Over!")
}
