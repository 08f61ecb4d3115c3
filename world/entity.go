package world

// EntityId is a process-unique serial. Ids are never reused, so a removed
// entity's id can not resolve to an entity spawned later into the same slot.
type EntityId uint64

// Kind discriminates the behaviour rules applied to an entity.
type Kind uint8

const (
	Player Kind = iota
	Enemy
	PlayerShot
	EnemyShot

	kindCount
)

// Kinds lists the pooled kinds in draw order.
var Kinds = [...]Kind{Enemy, PlayerShot, EnemyShot}

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	case PlayerShot:
		return "player_shot"
	case EnemyShot:
		return "enemy_shot"
	default:
		return "unknown"
	}
}

// Sprite returns the visual resource drawn for the kind.
func (k Kind) Sprite() SpriteID {
	switch k {
	case Player:
		return SpritePlayer
	case Enemy:
		return SpriteEnemy
	default:
		return SpriteProjectile
	}
}

// SpriteID is an opaque handle to a loaded image resource.
type SpriteID uint8

const (
	SpritePlayer SpriteID = iota
	SpriteEnemy
	SpriteProjectile

	SpriteCount
)

// Entity is the single shape shared by the player, enemies and projectiles.
type Entity struct {
	Id     EntityId
	Kind   Kind
	Rect   Rect
	Sprite SpriteID
}
