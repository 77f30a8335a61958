package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/gamemap"
)

// Snapshot is the persisted form of a State. Its JSON shape is the save
// blob format: the grid flattened row-major (0 floor, 1 wall), the player,
// the live enemies, score and level.
type Snapshot struct {
	Map     []int           `json:"map"`
	Player  PlayerSnapshot  `json:"player"`
	Enemies []EnemySnapshot `json:"enemies"`
	Score   int             `json:"score"`
	Level   int             `json:"level"`
}

// PlayerSnapshot is the saved part of the player.
type PlayerSnapshot struct {
	X   float64  `json:"x"`
	Y   float64  `json:"y"`
	HP  int      `json:"hp"`
	Inv []string `json:"inv"`
}

// EnemySnapshot is the saved part of one enemy.
type EnemySnapshot struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	HP int     `json:"hp"`
}

// SnapshotError reports a save blob that cannot be restored.
type SnapshotError struct {
	Field  string
	Reason string
	Err    error
}

func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("game: malformed snapshot %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("game: malformed snapshot %s: %s", e.Field, e.Reason)
}

func (e *SnapshotError) Unwrap() error { return e.Err }

// Serialize captures the state as a Snapshot. The result shares no memory
// with s.
func (s *State) Serialize() Snapshot {
	snap := Snapshot{
		Map: s.Map.Flatten(),
		Player: PlayerSnapshot{
			X:   s.Player.Pos.X,
			Y:   s.Player.Pos.Y,
			HP:  s.Player.HP,
			Inv: append([]string{}, s.Player.Player.Inventory...),
		},
		Enemies: make([]EnemySnapshot, 0, len(s.Enemies)),
		Score:   s.Score,
		Level:   s.Level,
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{X: e.Pos.X, Y: e.Pos.Y, HP: e.HP})
	}
	return snap
}

// Deserialize rebuilds a State from snap. Grid dimensions and actor stats
// come from rules; the snapshot supplies only what it stores. Enemies are
// rebuilt fresh, wandering, with new IDs in saved order. Any validation
// failure returns a *SnapshotError and no State.
func Deserialize(snap Snapshot, rules Rules, seed int64) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	gmap, err := gamemap.FromFlat(rules.Map.Width, rules.Map.Height, snap.Map)
	if err != nil {
		return nil, &SnapshotError{Field: "map", Reason: "does not match the grid", Err: err}
	}
	if snap.Level < 1 {
		return nil, &SnapshotError{Field: "level", Reason: fmt.Sprintf("%d is below 1", snap.Level)}
	}
	if snap.Score < 0 {
		return nil, &SnapshotError{Field: "score", Reason: fmt.Sprintf("%d is negative", snap.Score)}
	}

	p := snap.Player
	ppos := component.Vec{X: p.X, Y: p.Y}
	if !ppos.Finite() || gmap.IsWallAt(p.X, p.Y) {
		return nil, &SnapshotError{Field: "player", Reason: fmt.Sprintf("position (%v,%v) is not on a floor cell", p.X, p.Y)}
	}
	if p.HP < 0 || p.HP > rules.Player.MaxHP {
		return nil, &SnapshotError{Field: "player.hp", Reason: fmt.Sprintf("%d outside [0,%d]", p.HP, rules.Player.MaxHP)}
	}

	s := &State{
		Rules:   rules,
		Map:     gmap,
		Score:   snap.Score,
		Level:   snap.Level,
		Running: p.HP > 0,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Player = s.newPlayer(ppos)
	s.Player.HP = p.HP
	s.Player.Player.Inventory = append([]string{}, p.Inv...)

	s.nextID = playerID + 1
	s.Enemies = make([]*component.Actor, 0, len(snap.Enemies))
	for i, es := range snap.Enemies {
		pos := component.Vec{X: es.X, Y: es.Y}
		if !pos.Finite() || gmap.IsWallAt(es.X, es.Y) {
			return nil, &SnapshotError{Field: fmt.Sprintf("enemies[%d]", i), Reason: fmt.Sprintf("position (%v,%v) is not on a floor cell", es.X, es.Y)}
		}
		if es.HP <= 0 || es.HP > rules.Enemy.MaxHP {
			return nil, &SnapshotError{Field: fmt.Sprintf("enemies[%d].hp", i), Reason: fmt.Sprintf("%d outside [1,%d]", es.HP, rules.Enemy.MaxHP)}
		}
		e := s.newEnemy(pos)
		e.HP = es.HP
		s.Enemies = append(s.Enemies, e)
	}
	s.Stats = RunLog{Seed: seed, Score: s.Score, Level: s.Level}
	return s, nil
}

// rawSnapshot mirrors Snapshot with pointers so missing fields can be told
// apart from zero values.
type rawSnapshot struct {
	Map    []int `json:"map"`
	Player *struct {
		X   *float64 `json:"x"`
		Y   *float64 `json:"y"`
		HP  *int     `json:"hp"`
		Inv *[]string `json:"inv"`
	} `json:"player"`
	Enemies []struct {
		X  *float64 `json:"x"`
		Y  *float64 `json:"y"`
		HP *int     `json:"hp"`
	} `json:"enemies"`
	Score *int `json:"score"`
	Level *int `json:"level"`
}

// DecodeSnapshot parses a save blob, rejecting unknown or missing fields.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raw rawSnapshot
	if err := dec.Decode(&raw); err != nil {
		return Snapshot{}, &SnapshotError{Field: "blob", Reason: "invalid JSON", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Snapshot{}, &SnapshotError{Field: "blob", Reason: "data after the snapshot object", Err: err}
	}
	switch {
	case raw.Map == nil:
		return Snapshot{}, &SnapshotError{Field: "map", Reason: "missing"}
	case raw.Player == nil:
		return Snapshot{}, &SnapshotError{Field: "player", Reason: "missing"}
	case raw.Player.X == nil || raw.Player.Y == nil || raw.Player.HP == nil:
		return Snapshot{}, &SnapshotError{Field: "player", Reason: "missing x, y or hp"}
	case raw.Player.Inv == nil:
		return Snapshot{}, &SnapshotError{Field: "player.inv", Reason: "missing"}
	case raw.Enemies == nil:
		return Snapshot{}, &SnapshotError{Field: "enemies", Reason: "missing"}
	case raw.Score == nil:
		return Snapshot{}, &SnapshotError{Field: "score", Reason: "missing"}
	case raw.Level == nil:
		return Snapshot{}, &SnapshotError{Field: "level", Reason: "missing"}
	}

	snap := Snapshot{
		Map: raw.Map,
		Player: PlayerSnapshot{
			X:   *raw.Player.X,
			Y:   *raw.Player.Y,
			HP:  *raw.Player.HP,
			Inv: *raw.Player.Inv,
		},
		Enemies: make([]EnemySnapshot, 0, len(raw.Enemies)),
		Score:   *raw.Score,
		Level:   *raw.Level,
	}
	for i, e := range raw.Enemies {
		if e.X == nil || e.Y == nil || e.HP == nil {
			return Snapshot{}, &SnapshotError{Field: fmt.Sprintf("enemies[%d]", i), Reason: "missing x, y or hp"}
		}
		snap.Enemies = append(snap.Enemies, EnemySnapshot{X: *e.X, Y: *e.Y, HP: *e.HP})
	}
	return snap, nil
}
