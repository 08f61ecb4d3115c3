package world

import "github.com/kamstrup/intmap"

// Commands buffers operations that run after an activity has finished with the
// world: spawns, removals and deferred callbacks such as sink notifications.
type Commands struct {
	spawns  []spawnCommand
	removes []EntityId
	removed *intmap.Map[EntityId, struct{}]
	defers  []func()
}

type spawnCommand struct {
	kind Kind
	rect Rect
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{removed: intmap.New[EntityId, struct{}](32)}
}

// Spawn queues an entity spawn.
func (c *Commands) Spawn(kind Kind, rect Rect) {
	c.spawns = append(c.spawns, spawnCommand{kind: kind, rect: rect})
}

// Remove queues a removal. Queuing the same id twice removes it once; ids that
// are gone by flush time are ignored.
func (c *Commands) Remove(id EntityId) {
	if _, queued := c.removed.Get(id); queued {
		return
	}
	c.removed.Put(id, struct{}{})
	c.removes = append(c.removes, id)
}

// Defer queues fn to run after spawns and removals have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.removes) + len(c.defers)
}

// Flush applies removals, then spawns, then deferred callbacks, and resets the buffer.
func (c *Commands) Flush(w *World) {
	for _, id := range c.removes {
		w.Remove(id)
	}

	for _, cmd := range c.spawns {
		w.Spawn(cmd.kind, cmd.rect)
	}

	// A callback may defer another callback; both run in this flush.
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}

	clear(c.defers)
	c.spawns = c.spawns[:0]
	for _, id := range c.removes {
		c.removed.Del(id)
	}
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
