// Package sim holds the game rules: the fixed-timestep step, enemy fire and
// the player's input. All mutable session state lives in State.
package sim

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/world"
)

// PointsPerKill is added to the score for every enemy destroyed.
const PointsPerKill = 10

// State is one game session.
type State struct {
	cfg   config.Config
	world *world.World
	rng   *rand.Rand

	movingRight bool
	score       int
	outcome     Outcome

	lastShot time.Duration
	hasShot  bool

	scratch []world.EntityId
}

// ResolveSeed returns seed, or a random non-zero seed when it is zero. Callers
// keep the result so the session can be replayed.
func ResolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// NewRand returns a PCG-backed generator. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	seed = ResolveSeed(seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New builds a session for cfg: the player centred near the bottom edge and
// the enemy formation laid out from rng. cfg.Screen must be fully resolved.
func New(cfg config.Config, rng *rand.Rand) *State {
	s := &State{
		cfg:         cfg,
		world:       world.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		rng:         rng,
		movingRight: true,
	}

	s.world.SetPlayer(world.Rect{
		X: (s.world.Width() - cfg.Player.Width) / 2,
		Y: s.world.Height() - cfg.Player.Height - cfg.Player.Margin,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	})
	s.spawnFormation()

	return s
}

func (s *State) spawnFormation() {
	f := s.cfg.Formation
	e := s.cfg.Enemy

	for i := 0; i < f.Rows; i++ {
		for j := 0; j < f.Cols; j++ {
			if s.rng.Float64() >= f.Density {
				continue
			}
			s.world.Spawn(world.Enemy, world.Rect{
				X: f.OriginX + float64(j)*(e.Width+f.GapX),
				Y: f.OriginY + float64(i)*(e.Height+f.GapY),
				W: e.Width,
				H: e.Height,
			})
		}
	}
}

// World returns the entity store the session mutates.
func (s *State) World() *world.World { return s.world }

// Config returns the configuration the session was built from.
func (s *State) Config() config.Config { return s.cfg }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Outcome returns the current outcome.
func (s *State) Outcome() Outcome { return s.outcome }

// MovingRight reports the formation's current direction.
func (s *State) MovingRight() bool { return s.movingRight }
