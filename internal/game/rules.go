package game

import (
	"fmt"
	"math"
	"math/rand"

	"dungeon-arcanum/internal/generate"
	"dungeon-arcanum/internal/system"
)

// MapRules sizes the grid and the rooms carved into it.
type MapRules struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Rooms    int `yaml:"rooms"`
	MinRoomW int `yaml:"min_room_w"`
	MaxRoomW int `yaml:"max_room_w"`
	MinRoomH int `yaml:"min_room_h"`
	MaxRoomH int `yaml:"max_room_h"`
}

// PlayerRules holds the player's starting stats.
type PlayerRules struct {
	MaxHP int     `yaml:"max_hp"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// EnemyRules holds the stats every spawned enemy shares.
type EnemyRules struct {
	Count  int     `yaml:"count"`
	MaxHP  int     `yaml:"max_hp"`
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
}

// Rules is the full set of tunables for one game.
type Rules struct {
	Map    MapRules           `yaml:"map"`
	Player PlayerRules        `yaml:"player"`
	Enemy  EnemyRules         `yaml:"enemy"`
	AI     system.AIParams    `yaml:"ai"`
	Melee  system.MeleeParams `yaml:"melee"`
	// MaxStep caps the dt a single Step integrates.
	MaxStep float64 `yaml:"max_step"`
	// PickupItem is the item identifier granted by the pickup command.
	PickupItem string `yaml:"pickup_item"`
}

// Spawn offsets inside the chosen cell.
const (
	playerOffset = 0.5
	enemyOffset  = 0.2
)

// DefaultRules returns the stock 40x30 dungeon with 9 rooms and 12 enemies.
func DefaultRules() Rules {
	return Rules{
		Map: MapRules{
			Width: 40, Height: 30, Rooms: 9,
			MinRoomW: 4, MaxRoomW: 10,
			MinRoomH: 4, MaxRoomH: 8,
		},
		Player: PlayerRules{MaxHP: 100, Speed: 3, Size: 0.8},
		Enemy:  EnemyRules{Count: 12, MaxHP: 40, Damage: 10, Speed: 1.2, Size: 0.8},
		AI: system.AIParams{
			DetectRadius:   10,
			ContactRadius:  0.9,
			HurtCooldown:   0.8,
			WanderInterval: 2.0,
			WanderSpeed:    0.2,
		},
		Melee: system.MeleeParams{
			Radius:       1.2,
			Damage:       30,
			Reward:       10,
			ParticleLife: 0.6,
		},
		MaxStep:    0.05,
		PickupItem: "potion",
	}
}

// GenConfig builds a generate.Config for these rules.
func (r Rules) GenConfig(rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Width:     r.Map.Width,
		Height:    r.Map.Height,
		RoomCount: r.Map.Rooms,
		MinRoomW:  r.Map.MinRoomW,
		MaxRoomW:  r.Map.MaxRoomW,
		MinRoomH:  r.Map.MinRoomH,
		MaxRoomH:  r.Map.MaxRoomH,
		Rand:      rng,
	}
}

// RuleError names the rule that cannot produce a playable game.
type RuleError struct {
	Field  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("game: invalid %s: %s", e.Field, e.Reason)
}

// Validate reports the first rule that cannot produce a playable game.
// Map problems surface as *generate.ConfigError, the rest as *RuleError.
//
// Movement only samples the destination cell, so no actor may cover a full
// tile on one axis in a single step; otherwise it could hop a one-cell wall.
func (r Rules) Validate() error {
	cfg := r.GenConfig(rand.New(rand.NewSource(0)))
	if err := cfg.Validate(); err != nil {
		return err
	}
	negative := func(field string, v float64) error {
		return &RuleError{Field: field, Reason: fmt.Sprintf("%v is negative", v)}
	}
	switch {
	case r.Player.MaxHP <= 0:
		return &RuleError{Field: "player.max_hp", Reason: fmt.Sprintf("%d is not positive", r.Player.MaxHP)}
	case r.Player.Speed < 0:
		return negative("player.speed", r.Player.Speed)
	case r.Enemy.Speed < 0:
		return negative("enemy.speed", r.Enemy.Speed)
	case r.Enemy.Count < 0:
		return negative("enemy.count", float64(r.Enemy.Count))
	case r.Enemy.MaxHP <= 0:
		return &RuleError{Field: "enemy.max_hp", Reason: fmt.Sprintf("%d is not positive", r.Enemy.MaxHP)}
	case r.Enemy.Damage < 0:
		return negative("enemy.damage", float64(r.Enemy.Damage))
	case r.Melee.Damage < 0:
		return negative("melee.damage", float64(r.Melee.Damage))
	case r.Melee.Radius < 0:
		return negative("melee.radius", r.Melee.Radius)
	case r.Melee.Reward < 0:
		return negative("melee.reward", float64(r.Melee.Reward))
	case r.AI.DetectRadius < 0:
		return negative("ai.detect_radius", r.AI.DetectRadius)
	case r.AI.ContactRadius < 0:
		return negative("ai.contact_radius", r.AI.ContactRadius)
	case r.AI.WanderSpeed < 0:
		return negative("ai.wander_speed", r.AI.WanderSpeed)
	case r.AI.HurtCooldown < 0:
		return negative("ai.hurt_cooldown", r.AI.HurtCooldown)
	case r.AI.WanderInterval < 0:
		return negative("ai.wander_interval", r.AI.WanderInterval)
	case r.Melee.ParticleLife <= 0:
		return &RuleError{Field: "melee.particle_life", Reason: fmt.Sprintf("%v is not positive", r.Melee.ParticleLife)}
	case !(r.MaxStep > 0):
		return &RuleError{Field: "max_step", Reason: fmt.Sprintf("%v is not positive", r.MaxStep)}
	case r.PickupItem == "":
		return &RuleError{Field: "pickup_item", Reason: "empty"}
	}
	for _, m := range []struct {
		field string
		speed float64
	}{
		{"player.speed", r.Player.Speed},
		{"enemy.speed", r.Enemy.Speed},
		// wander directions are unnormalized, up to sqrt(2) long
		{"ai.wander_speed", r.AI.WanderSpeed * math.Sqrt2},
	} {
		if step := m.speed * r.MaxStep; !(step < 1) {
			return &RuleError{
				Field:  m.field,
				Reason: fmt.Sprintf("moves %.3g tiles per %vs step; must stay under 1", step, r.MaxStep),
			}
		}
	}
	return nil
}
