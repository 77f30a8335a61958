package component

// Actor is the shared record for the player and enemies. Exactly one of
// Player and Enemy is non-nil, matching Kind.
type Actor struct {
	ID    int
	Kind  Kind
	Pos   Vec
	HP    int
	MaxHP int
	Speed float64
	// Size is the sprite footprint. Collision samples Pos only.
	Size float64

	Player *PlayerTraits
	Enemy  *EnemyTraits
}

// NewPlayer creates a player actor at pos with full health.
func NewPlayer(id int, pos Vec, maxHP int, speed, size float64) *Actor {
	return &Actor{
		ID: id, Kind: KindPlayer, Pos: pos,
		HP: maxHP, MaxHP: maxHP, Speed: speed, Size: size,
		Player: &PlayerTraits{},
	}
}

// NewEnemy creates an enemy actor at pos with full health.
func NewEnemy(id int, pos Vec, maxHP int, speed, size float64, damage int) *Actor {
	return &Actor{
		ID: id, Kind: KindEnemy, Pos: pos,
		HP: maxHP, MaxHP: maxHP, Speed: speed, Size: size,
		Enemy: &EnemyTraits{Damage: damage},
	}
}
