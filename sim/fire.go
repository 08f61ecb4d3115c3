package sim

import "github.com/plus3/invaders/world"

// Aim picks a random enemy and returns the rectangle of the projectile it
// fires, centred under the enemy. It reports false when no enemies remain.
func (s *State) Aim() (world.Rect, bool) {
	s.scratch = s.world.AppendIds(s.scratch[:0], world.Enemy)
	if len(s.scratch) == 0 {
		return world.Rect{}, false
	}

	shooter, _ := s.world.Get(s.scratch[s.rng.IntN(len(s.scratch))])
	shot := s.cfg.EnemyShot
	return world.Rect{
		X: shooter.Rect.CenterX() - shot.Width/2,
		Y: shooter.Rect.Bottom(),
		W: shot.Width,
		H: shot.Height,
	}, true
}

// Fire spawns an enemy projectile from a random enemy. It is a no-op when the
// formation is empty.
func (s *State) Fire() (world.EntityId, bool) {
	rect, ok := s.Aim()
	if !ok {
		return 0, false
	}
	return s.world.Spawn(world.EnemyShot, rect), true
}
