// Package game owns the simulation state and advances it one step at a time.
// It never renders or logs; Step returns events for the caller to display.
package game

import (
	"fmt"
	"math/rand"

	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/gamemap"
	"dungeon-arcanum/internal/generate"
	"dungeon-arcanum/internal/system"
)

// ErrNoFloor is returned when a generated map has nowhere to place actors.
var ErrNoFloor = generate.ErrNoFloor

// playerID is the actor ID of the player; enemies count up from 1.
const playerID = 0

// State is one running game. It is not safe for concurrent use: a single
// owner calls Step, Serialize and Reset in sequence.
type State struct {
	Rules     Rules
	Map       *gamemap.GameMap
	Player    *component.Actor
	Enemies   []*component.Actor // ascending ID order
	Particles []component.Particle
	Score     int
	Level     int
	Running   bool
	// Stats accumulates per-run totals for the run log.
	Stats RunLog

	rng    *rand.Rand
	nextID int
}

// New generates a fresh game from rules using a deterministic seed.
func New(rules Rules, seed int64) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &State{Rules: rules, rng: rand.New(rand.NewSource(seed))}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	s.Stats.Seed = seed
	return s, nil
}

// Reset regenerates the map, repositions every actor and clears score,
// level, particles and run stats. The state's random source carries on,
// so successive resets produce different dungeons.
func (s *State) Reset() error {
	gmap, _, err := generate.Generate(s.Rules.GenConfig(s.rng))
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	start, err := generate.PlayerStart(gmap)
	if err != nil {
		return err
	}
	spawns, err := generate.Populate(gmap, s.rng, s.Rules.Enemy.Count)
	if err != nil {
		return err
	}

	s.Map = gmap
	s.Player = s.newPlayer(component.Vec{
		X: float64(start.X) + playerOffset,
		Y: float64(start.Y) + playerOffset,
	})
	s.nextID = playerID + 1
	s.Enemies = s.Enemies[:0]
	for _, sp := range spawns {
		s.Enemies = append(s.Enemies, s.newEnemy(component.Vec{
			X: float64(sp.X) + enemyOffset,
			Y: float64(sp.Y) + enemyOffset,
		}))
	}
	s.Particles = nil
	s.Score = 0
	s.Level = 1
	s.Running = true
	s.Stats = RunLog{Seed: s.Stats.Seed}
	return nil
}

func (s *State) newPlayer(pos component.Vec) *component.Actor {
	r := s.Rules.Player
	return component.NewPlayer(playerID, pos, r.MaxHP, r.Speed, r.Size)
}

func (s *State) newEnemy(pos component.Vec) *component.Actor {
	r := s.Rules.Enemy
	e := component.NewEnemy(s.nextID, pos, r.MaxHP, r.Speed, r.Size, r.Damage)
	s.nextID++
	return e
}

// Step advances the simulation by dt seconds under the given input and
// returns what happened. Once the player is dead Step is a no-op until
// Reset.
func (s *State) Step(dt float64, in Intent) []Event {
	if !s.Running {
		return nil
	}
	dt = clampDT(dt, s.Rules.MaxStep)
	in = in.sanitize()
	pt := s.Player.Player
	pt.TickCooldown(dt)

	var events []Event

	if in.Pickup {
		pt.AddItem(s.Rules.PickupItem)
		s.Stats.ItemsFound++
		events = append(events, Event{
			Kind: EventItemFound, Actor: s.Player.ID,
			Item: s.Rules.PickupItem, HP: s.Player.HP, Score: s.Score,
		})
	}

	if in.Moving() {
		system.MoveActor(s.Map, s.Player, component.Vec{X: in.DX, Y: in.DY}, dt)
	}

	if in.Attack {
		var hits []system.AttackResult
		hits, s.Enemies = system.Melee(s.Player, s.Enemies, s.Rules.Melee)
		for _, h := range hits {
			s.Score += s.Rules.Melee.Reward
			s.Particles = system.SpawnParticle(s.Particles, h.Pos, s.Rules.Melee.ParticleLife)
			s.Stats.DamageDealt += h.Damage
			if h.Killed {
				s.Stats.EnemiesKilled++
			}
			events = append(events, Event{
				Kind: EventEnemyHit, Actor: h.EnemyID,
				Amount: h.Damage, HP: h.HPLeft, Score: s.Score, Killed: h.Killed,
			})
		}
	}

	for _, h := range system.ProcessAI(s.Map, s.Enemies, s.Player, dt, s.rng, s.Rules.AI) {
		s.Stats.DamageTaken += h.Damage
		events = append(events, Event{
			Kind: EventPlayerHurt, Actor: h.EnemyID,
			Amount: h.Damage, HP: h.HPLeft, Score: s.Score,
		})
	}

	s.Particles = system.AgeParticles(s.Particles, dt)
	s.Stats.Seconds += dt

	if !s.Player.Alive() {
		s.Running = false
		s.Stats.Died = true
		events = append(events, Event{Kind: EventPlayerDied, Actor: s.Player.ID, Score: s.Score})
	}
	s.Stats.Score = s.Score
	s.Stats.Level = s.Level
	return events
}

// clampDT bounds dt to [0, maxStep]; non-finite values become 0.
func clampDT(dt, maxStep float64) float64 {
	switch {
	case dt != dt || dt < 0: // NaN or negative
		return 0
	case dt > maxStep:
		return maxStep
	}
	return dt
}

// Enemy returns the live enemy with the given ID, or nil.
func (s *State) Enemy(id int) *component.Actor {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
