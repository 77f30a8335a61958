package system

import (
	"math/rand"

	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/gamemap"
)

// AIParams tunes enemy behavior. Distances are in tiles, times in seconds.
type AIParams struct {
	DetectRadius   float64 `yaml:"detect_radius"`
	ContactRadius  float64 `yaml:"contact_radius"`
	HurtCooldown   float64 `yaml:"hurt_cooldown"`
	WanderInterval float64 `yaml:"wander_interval"`
	// WanderSpeed is an absolute speed in tiles per second.
	WanderSpeed float64 `yaml:"wander_speed"`
}

// ContactHit records contact damage one enemy dealt to the player.
type ContactHit struct {
	EnemyID int
	Damage  int
	HPLeft  int
}

// ProcessAI runs one AI update for every enemy in slice order and returns the
// contact hits landed on the player. Because a hit resets the player's
// cooldown and the cooldown only decays between steps, at most one enemy can
// land a hit per step.
func ProcessAI(gmap *gamemap.GameMap, enemies []*component.Actor, player *component.Actor,
	dt float64, rng *rand.Rand, p AIParams) []ContactHit {

	var hits []ContactHit
	for _, e := range enemies {
		if hit, ok := UpdateEnemy(gmap, e, player, dt, rng, p); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// UpdateEnemy advances one enemy: timer, mode, movement, then contact damage.
// The distance used for both the mode and the contact check is measured
// before the enemy moves.
func UpdateEnemy(gmap *gamemap.GameMap, enemy, player *component.Actor,
	dt float64, rng *rand.Rand, p AIParams) (ContactHit, bool) {

	e := enemy.Enemy
	if e == nil {
		return ContactHit{}, false
	}
	e.AITimer += dt

	toPlayer := player.Pos.Sub(enemy.Pos)
	dist := toPlayer.Len()

	if dist < p.DetectRadius {
		e.Mode = component.ModeChasing
		// Normalize yields zero on top of the player, so no NaN step.
		MoveActor(gmap, enemy, toPlayer.Normalize(), dt)
	} else {
		e.Mode = component.ModeWandering
		wander(gmap, enemy, dt, rng, p)
	}

	if dist < p.ContactRadius && player.Player != nil && player.Player.HurtCooldown <= 0 {
		left := player.Hurt(e.Damage)
		player.Player.HurtCooldown = p.HurtCooldown
		return ContactHit{EnemyID: enemy.ID, Damage: e.Damage, HPLeft: left}, true
	}
	return ContactHit{}, false
}

// wander picks a fresh unnormalized direction each time the timer passes the
// interval, then drifts along the current direction.
func wander(gmap *gamemap.GameMap, enemy *component.Actor, dt float64, rng *rand.Rand, p AIParams) {
	e := enemy.Enemy
	if e.AITimer > p.WanderInterval {
		e.AITimer = 0
		e.WanderDir = component.Vec{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		e.HasWanderDir = true
	}
	if e.HasWanderDir {
		TryMove(gmap, &enemy.Pos, e.WanderDir.Scale(p.WanderSpeed*dt))
	}
}
