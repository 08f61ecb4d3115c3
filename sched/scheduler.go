// Package sched runs recurring activities against a world on fixed cadences.
//
// Time only moves when the caller advances it, either frame by frame through
// Advance or from a wall-clock ticker through Run. Every activity runs to
// completion before the next one starts, and the frame's command buffer is
// flushed into the world after each run.
package sched

import (
	"context"
	"time"

	"github.com/plus3/invaders/world"
)

// DefaultMaxCatchUp bounds how many overdue runs of one activity a single
// Advance call performs. Backlog beyond that is dropped.
const DefaultMaxCatchUp = 5

// Stats provides statistics about scheduler execution.
type Stats struct {
	ActivityCount   int
	TotalExecutions int64
	Activities      []ActivityStats
}

// ActivityStats provides execution statistics for a single activity.
type ActivityStats struct {
	Name           string
	Interval       time.Duration
	Stopped        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type entry struct {
	name     string
	activity Activity
	interval time.Duration
	next     time.Duration
	runs     int
	stopped  bool

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns the game clock and the recurring activities.
type Scheduler struct {
	world      *world.World
	commands   *world.Commands
	entries    []*entry
	now        time.Duration
	maxCatchUp int
}

// New creates a scheduler for w with its clock at zero.
func New(w *world.World) *Scheduler {
	return &Scheduler{
		world:      w,
		commands:   world.NewCommands(),
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// SetMaxCatchUp changes the per-call catch-up bound. Values below one are treated as one.
func (s *Scheduler) SetMaxCatchUp(n int) {
	s.maxCatchUp = max(n, 1)
}

// Register adds an activity that first runs one interval from now and then
// every interval after that. A non-positive interval panics.
func (s *Scheduler) Register(name string, activity Activity, interval time.Duration) {
	if interval <= 0 {
		panic("sched: interval must be positive for " + name)
	}
	s.entries = append(s.entries, &entry{
		name:        name,
		activity:    activity,
		interval:    interval,
		next:        s.now + interval,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Now returns the game clock: the total time advanced so far.
func (s *Scheduler) Now() time.Duration { return s.now }

// Advance moves the clock forward by dt and runs every activity that fell due,
// in order of due time. Ties run in registration order. It returns the number
// of runs performed.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	total := 0
	for {
		e := s.nextDue()
		if e == nil {
			break
		}
		s.execute(e, e.next)
		e.next += e.interval
		e.runs++
		total++
	}

	for _, e := range s.entries {
		if !e.stopped && e.next <= s.now {
			e.next = s.now + e.interval
		}
		e.runs = 0
	}
	return total
}

func (s *Scheduler) nextDue() *entry {
	var due *entry
	for _, e := range s.entries {
		if e.stopped || e.next > s.now || e.runs >= s.maxCatchUp {
			continue
		}
		if due == nil || e.next < due.next {
			due = e
		}
	}
	return due
}

// Once runs every active activity a single time at the current clock,
// regardless of cadence.
func (s *Scheduler) Once() {
	for _, e := range s.entries {
		if e.stopped {
			continue
		}
		s.execute(e, s.now)
	}
}

func (s *Scheduler) execute(e *entry, at time.Duration) {
	frame := &Frame{
		Elapsed:  at,
		World:    s.world,
		Commands: s.commands,
	}

	start := time.Now()
	e.activity.Execute(frame)
	duration := time.Since(start)

	s.commands.Flush(s.world)

	e.executionCount++
	e.lastDuration = duration
	e.totalDuration += duration
	if duration < e.minDuration {
		e.minDuration = duration
	}
	if duration > e.maxDuration {
		e.maxDuration = duration
	}

	if frame.stopped {
		e.stopped = true
	}
}

// Done reports whether activities were registered and all of them have stopped.
func (s *Scheduler) Done() bool {
	if len(s.entries) == 0 {
		return false
	}
	for _, e := range s.entries {
		if !e.stopped {
			return false
		}
	}
	return true
}

// Run advances the clock from a wall-clock ticker firing every step until the
// context is cancelled or every activity has stopped. It returns the context
// error in the first case and nil in the second.
func (s *Scheduler) Run(ctx context.Context, step time.Duration) error {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	lastTime := time.Now()

	for !s.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Advance(dt)
		}
	}
	return nil
}

// Stats returns statistics about activity execution.
func (s *Scheduler) Stats() Stats {
	stats := Stats{
		ActivityCount: len(s.entries),
		Activities:    make([]ActivityStats, len(s.entries)),
	}

	var totalExecs int64
	for i, e := range s.entries {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if e.executionCount > 0 {
			avgDuration = e.totalDuration / time.Duration(e.executionCount)
			minDuration = e.minDuration
		}

		stats.Activities[i] = ActivityStats{
			Name:           e.name,
			Interval:       e.interval,
			Stopped:        e.stopped,
			ExecutionCount: e.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    e.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   e.lastDuration,
			TotalDuration:  e.totalDuration,
		}
		totalExecs += e.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
