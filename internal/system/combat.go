package system

import (
	"slices"

	"dungeon-arcanum/internal/component"
)

// MeleeParams tunes the player's area melee attack.
type MeleeParams struct {
	Radius       float64 `yaml:"radius"`
	Damage       int     `yaml:"damage"`
	Reward       int     `yaml:"reward"`
	ParticleLife float64 `yaml:"particle_life"`
}

// AttackResult holds the outcome of the melee against one enemy.
type AttackResult struct {
	EnemyID int
	Pos     component.Vec
	Damage  int
	HPLeft  int
	Killed  bool
}

// Melee damages every enemy strictly within p.Radius of the player, then
// drops the dead ones. The returned slice reuses the backing array of
// enemies and keeps the survivors in their original order.
func Melee(player *component.Actor, enemies []*component.Actor, p MeleeParams) ([]AttackResult, []*component.Actor) {
	var hits []AttackResult
	for _, e := range enemies {
		if player.Pos.Dist(e.Pos) >= p.Radius {
			continue
		}
		left := e.Hurt(p.Damage)
		hits = append(hits, AttackResult{
			EnemyID: e.ID,
			Pos:     e.Pos,
			Damage:  p.Damage,
			HPLeft:  left,
			Killed:  left <= 0,
		})
	}
	if len(hits) == 0 {
		return nil, enemies
	}
	return hits, RemoveDead(enemies)
}

// RemoveDead drops actors with no HP left, preserving order.
func RemoveDead(actors []*component.Actor) []*component.Actor {
	return slices.DeleteFunc(actors, func(a *component.Actor) bool { return !a.Alive() })
}
