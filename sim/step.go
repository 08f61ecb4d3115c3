package sim

import "github.com/plus3/invaders/world"

// Report summarises one Step.
type Report struct {
	Kills      int
	ScoreDelta int
	Outcome    Outcome
}

// Step advances the session by one tick. It is a no-op once the outcome is
// terminal.
func (s *State) Step() Report {
	if s.outcome.Terminal() {
		return Report{Outcome: s.outcome}
	}

	s.moveFormation()
	s.movePlayerShots()

	if s.moveEnemyShots() {
		s.outcome = Lost
		return Report{Outcome: s.outcome}
	}

	kills := s.resolveHits()
	report := Report{
		Kills:      kills,
		ScoreDelta: kills * PointsPerKill,
	}
	s.score += report.ScoreDelta

	switch {
	case s.formationReachedPlayer():
		s.outcome = Lost
	case s.world.Count(world.Enemy) == 0:
		s.outcome = Won
	}

	report.Outcome = s.outcome
	return report
}

// moveFormation shifts every enemy sideways and, when any of them crossed the
// edge it was heading for, reverses and drops the whole formation by one
// enemy height in the same tick.
func (s *State) moveFormation() {
	speed := s.cfg.Enemy.Speed
	width := s.world.Width()

	reverse := false
	for e := range s.world.Each(world.Enemy) {
		if s.movingRight {
			e.Rect.X += speed
			if e.Rect.Right() > width {
				reverse = true
			}
		} else {
			e.Rect.X -= speed
			if e.Rect.X < 0 {
				reverse = true
			}
		}
	}

	if !reverse {
		return
	}

	s.movingRight = !s.movingRight
	drop := s.cfg.Enemy.Height
	for e := range s.world.Each(world.Enemy) {
		e.Rect.Y += drop
	}
}

func (s *State) movePlayerShots() {
	speed := s.cfg.PlayerShot.Speed
	for shot := range s.world.Each(world.PlayerShot) {
		shot.Rect.Y -= speed
		if shot.Rect.Bottom() < 0 {
			s.world.Remove(shot.Id)
		}
	}
}

// moveEnemyShots reports whether an enemy projectile hit the player.
func (s *State) moveEnemyShots() bool {
	speed := s.cfg.EnemyShot.Speed
	height := s.world.Height()
	player := s.world.Player().Rect

	for shot := range s.world.Each(world.EnemyShot) {
		shot.Rect.Y += speed
		if shot.Rect.Y > height {
			s.world.Remove(shot.Id)
			continue
		}
		if shot.Rect.Overlaps(player) {
			return true
		}
	}
	return false
}

// resolveHits removes every player projectile that overlaps an enemy along
// with the first enemy it overlaps, and returns the number of kills.
func (s *State) resolveHits() int {
	kills := 0
	for shot := range s.world.Each(world.PlayerShot) {
		for enemy := range s.world.Each(world.Enemy) {
			if !shot.Rect.Overlaps(enemy.Rect) {
				continue
			}
			s.world.Remove(shot.Id)
			s.world.Remove(enemy.Id)
			kills++
			break
		}
	}
	return kills
}

func (s *State) formationReachedPlayer() bool {
	line := s.world.Player().Rect.Y
	for e := range s.world.Each(world.Enemy) {
		if e.Rect.Bottom() >= line {
			return true
		}
	}
	return false
}
