// Package world is the entity store shared by the simulation, the input
// handler and the renderer: one player record plus a slot pool per kind of
// enemy and projectile.
package world

import (
	"iter"

	"github.com/kamstrup/intmap"
)

type slotRef struct {
	kind  Kind
	index int
}

// World holds every entity in play.
type World struct {
	width  float64
	height float64

	player Entity
	pools  [kindCount]Pool[Entity]

	index  *intmap.Map[EntityId, slotRef]
	nextId EntityId
}

// New creates an empty world for a surface of the given size in pixels.
func New(width, height float64) *World {
	return &World{
		width:  width,
		height: height,
		index:  intmap.New[EntityId, slotRef](256),
	}
}

// Width returns the surface width.
func (w *World) Width() float64 { return w.width }

// Height returns the surface height.
func (w *World) Height() float64 { return w.height }

func (w *World) allocId() EntityId {
	w.nextId++
	return w.nextId
}

// SetPlayer places the player. The player keeps its id across calls.
func (w *World) SetPlayer(rect Rect) *Entity {
	if w.player.Id == 0 {
		w.player = Entity{
			Id:     w.allocId(),
			Kind:   Player,
			Sprite: Player.Sprite(),
		}
	}
	w.player.Rect = rect
	return &w.player
}

// Player returns the player record.
func (w *World) Player() *Entity { return &w.player }

// Spawn adds an entity of a pooled kind and returns its id.
func (w *World) Spawn(kind Kind, rect Rect) EntityId {
	if kind == Player || kind >= kindCount {
		panic("world: cannot spawn kind " + kind.String())
	}

	id := w.allocId()
	index := w.pools[kind].Append(Entity{
		Id:     id,
		Kind:   kind,
		Rect:   rect,
		Sprite: kind.Sprite(),
	})
	w.index.Put(id, slotRef{kind: kind, index: index})
	return id
}

// Remove deletes the entity immediately. It reports whether the id was live.
func (w *World) Remove(id EntityId) bool {
	ref, ok := w.index.Get(id)
	if !ok {
		return false
	}
	w.index.Del(id)
	return w.pools[ref.kind].Delete(ref.index)
}

// Get resolves an id to its entity.
func (w *World) Get(id EntityId) (*Entity, bool) {
	if id != 0 && id == w.player.Id {
		return &w.player, true
	}
	ref, ok := w.index.Get(id)
	if !ok {
		return nil, false
	}
	e := w.pools[ref.kind].Get(ref.index)
	return e, e != nil
}

// Each yields the live entities of kind. Removing entities, including the one
// just yielded, while ranging is allowed; removed entities are not yielded.
// Remove zeroes the entity behind the yielded pointer, so copy its fields
// first.
func (w *World) Each(kind Kind) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		if kind == Player {
			if w.player.Id != 0 {
				yield(&w.player)
			}
			return
		}
		if kind >= kindCount {
			return
		}
		for _, e := range w.pools[kind].Iter() {
			if !yield(e) {
				return
			}
		}
	}
}

// AppendIds appends the ids of the live entities of kind to dst.
func (w *World) AppendIds(dst []EntityId, kind Kind) []EntityId {
	for e := range w.Each(kind) {
		dst = append(dst, e.Id)
	}
	return dst
}

// Count returns the number of live entities of kind.
func (w *World) Count(kind Kind) int {
	if kind == Player {
		if w.player.Id != 0 {
			return 1
		}
		return 0
	}
	if kind >= kindCount {
		return 0
	}
	return w.pools[kind].Len()
}

// Clear removes every entity of a pooled kind.
func (w *World) Clear(kind Kind) {
	if kind == Player || kind >= kindCount {
		return
	}
	for _, e := range w.pools[kind].Iter() {
		w.index.Del(e.Id)
	}
	w.pools[kind].Clear()
}

// KindStats describes the pool of one kind.
type KindStats struct {
	Kind Kind
	Live int
	Cap  int
	Free int
}

// Stats summarises the store.
type Stats struct {
	TotalEntities int
	Kinds         []KindStats
}

// Stats collects per-kind counts.
func (w *World) Stats() Stats {
	stats := Stats{
		TotalEntities: w.Count(Player),
		Kinds:         make([]KindStats, 0, len(Kinds)),
	}
	for _, kind := range Kinds {
		p := &w.pools[kind]
		stats.Kinds = append(stats.Kinds, KindStats{
			Kind: kind,
			Live: p.Len(),
			Cap:  p.Cap(),
			Free: p.Free(),
		})
		stats.TotalEntities += p.Len()
	}
	return stats
}
