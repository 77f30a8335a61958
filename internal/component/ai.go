package component

// AIMode is the enemy behavior picked each step from the distance to the player.
type AIMode uint8

const (
	ModeWandering AIMode = iota // initial mode
	ModeChasing
)

func (m AIMode) String() string {
	if m == ModeChasing {
		return "chasing"
	}
	return "wandering"
}

// EnemyTraits holds the state only enemies carry.
type EnemyTraits struct {
	Damage int
	// AITimer counts seconds since the last wander direction was picked.
	AITimer      float64
	WanderDir    Vec
	HasWanderDir bool
	Mode         AIMode
}
