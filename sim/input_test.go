package sim_test

import (
	"testing"
	"time"

	"github.com/plus3/invaders/sim"
	"github.com/plus3/invaders/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleKeyMovement(t *testing.T) {
	st := newEmptyState(t)
	player := st.World().Player()
	start := player.Rect.X

	require.True(t, st.HandleKey(sim.KeyRight, 0))
	assert.Equal(t, start+10, player.Rect.X)

	require.True(t, st.HandleKey(sim.KeyLeft, 0))
	assert.Equal(t, start, player.Rect.X)

	t.Run("clamped at the left edge", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			st.HandleKey(sim.KeyLeft, 0)
		}
		assert.Equal(t, 0.0, player.Rect.X)
		assert.False(t, st.HandleKey(sim.KeyLeft, 0))
	})

	t.Run("clamped at the right edge", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			st.HandleKey(sim.KeyRight, 0)
		}
		assert.Equal(t, 1024-50.0, player.Rect.X)
		assert.False(t, st.HandleKey(sim.KeyRight, 0))
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		x := player.Rect.X
		assert.False(t, st.HandleKey(sim.KeyNone, 0))
		assert.False(t, st.HandleKey(sim.Key(99), 0))
		assert.Equal(t, x, player.Rect.X)
	})
}

func TestHandleKeyFire(t *testing.T) {
	t.Run("spawns a centred projectile at the ship", func(t *testing.T) {
		st := newEmptyState(t)
		p := st.World().Player().Rect

		require.True(t, st.HandleKey(sim.KeyFire, 5*time.Second))

		var shots []world.Rect
		for e := range st.World().Each(world.PlayerShot) {
			shots = append(shots, e.Rect)
		}
		require.Len(t, shots, 1)
		assert.Equal(t, world.Rect{X: p.CenterX() - 10, Y: p.Y, W: 20, H: 20}, shots[0])
	})

	t.Run("first shot is allowed at time zero", func(t *testing.T) {
		st := newEmptyState(t)
		assert.True(t, st.HandleKey(sim.KeyFire, 0))
	})

	t.Run("two shots within the cooldown make one projectile", func(t *testing.T) {
		st := newEmptyState(t)

		assert.True(t, st.HandleKey(sim.KeyFire, time.Second))
		assert.False(t, st.HandleKey(sim.KeyFire, time.Second+999*time.Millisecond))
		assert.Equal(t, 1, st.World().Count(world.PlayerShot))

		assert.True(t, st.HandleKey(sim.KeyFire, 2*time.Second))
		assert.Equal(t, 2, st.World().Count(world.PlayerShot))
	})
}

func TestFire(t *testing.T) {
	t.Run("no enemies no projectile", func(t *testing.T) {
		st := newEmptyState(t)
		_, ok := st.Fire()
		assert.False(t, ok)
		assert.Equal(t, 0, st.World().Count(world.EnemyShot))
	})

	t.Run("projectile leaves from under the enemy", func(t *testing.T) {
		st := newEmptyState(t)
		spawnEnemy(st, 100, 40)

		id, ok := st.Fire()
		require.True(t, ok)

		shot, ok := st.World().Get(id)
		require.True(t, ok)
		assert.Equal(t, world.EnemyShot, shot.Kind)
		assert.Equal(t, world.Rect{X: 100 + 30 - 5, Y: 85, W: 10, H: 10}, shot.Rect)
	})

	t.Run("picks among all enemies", func(t *testing.T) {
		st := newEmptyState(t)
		spawnEnemy(st, 0, 40)
		spawnEnemy(st, 500, 40)

		xs := map[float64]bool{}
		for i := 0; i < 64; i++ {
			rect, ok := st.Aim()
			require.True(t, ok)
			xs[rect.X] = true
		}
		assert.Len(t, xs, 2)
	})
}
