package game

// EventKind identifies a notable thing that happened during a Step.
type EventKind uint8

const (
	EventEnemyHit EventKind = iota + 1
	EventPlayerHurt
	EventPlayerDied
	EventItemFound
)

func (k EventKind) String() string {
	switch k {
	case EventEnemyHit:
		return "enemy_hit"
	case EventPlayerHurt:
		return "player_hurt"
	case EventPlayerDied:
		return "player_died"
	case EventItemFound:
		return "item_found"
	}
	return "unknown"
}

// Event carries what a log line or HUD needs to describe one occurrence.
type Event struct {
	Kind EventKind
	// Actor is the ID of the enemy that was hit or that hurt the player,
	// or the player's ID for PlayerDied and ItemFound.
	Actor  int
	Amount int // damage dealt or taken
	HP     int // the damaged actor's HP afterwards
	Score  int // score after the event
	Item   string
	Killed bool
}
