package world_test

import (
	"testing"

	"github.com/plus3/invaders/world"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlushOrder(t *testing.T) {
	w := world.New(800, 600)
	victim := w.Spawn(world.Enemy, world.Rect{X: 1})
	cmds := world.NewCommands()

	var countAtDefer int
	cmds.Defer(func() { countAtDefer = w.Count(world.Enemy) + w.Count(world.EnemyShot) })
	cmds.Spawn(world.EnemyShot, world.Rect{X: 5})
	cmds.Remove(victim)
	assert.Equal(t, 3, cmds.Len())

	// Nothing happens until flush.
	assert.Equal(t, 1, w.Count(world.Enemy))
	assert.Equal(t, 0, w.Count(world.EnemyShot))

	cmds.Flush(w)

	assert.Equal(t, 0, w.Count(world.Enemy))
	assert.Equal(t, 1, w.Count(world.EnemyShot))
	assert.Equal(t, 1, countAtDefer, "deferred callbacks observe applied spawns and removals")
	assert.Equal(t, 0, cmds.Len())
}

func TestCommandsStaleRemoveIgnored(t *testing.T) {
	w := world.New(800, 600)
	id := w.Spawn(world.PlayerShot, world.Rect{})
	keep := w.Spawn(world.PlayerShot, world.Rect{})

	cmds := world.NewCommands()
	cmds.Remove(id)
	cmds.Remove(id)
	w.Remove(id)

	assert.NotPanics(t, func() { cmds.Flush(w) })
	_, ok := w.Get(keep)
	assert.True(t, ok)
}

func TestCommandsNestedDefer(t *testing.T) {
	w := world.New(800, 600)
	cmds := world.NewCommands()

	var calls []string
	cmds.Defer(func() {
		calls = append(calls, "outer")
		cmds.Defer(func() { calls = append(calls, "inner") })
	})
	cmds.Flush(w)

	assert.Equal(t, []string{"outer", "inner"}, calls)

	cmds.Flush(w)
	assert.Len(t, calls, 2, "flushed callbacks do not run twice")
}

func TestCommandsRemoveDedupe(t *testing.T) {
	w := world.New(800, 600)
	id := w.Spawn(world.Enemy, world.Rect{})
	cmds := world.NewCommands()

	cmds.Remove(id)
	cmds.Remove(id)
	assert.Equal(t, 1, cmds.Len())

	cmds.Flush(w)
	assert.Equal(t, 0, w.Count(world.Enemy))

	// A flushed buffer forgets what it removed.
	other := w.Spawn(world.Enemy, world.Rect{})
	cmds.Remove(other)
	assert.Equal(t, 1, cmds.Len())
}
