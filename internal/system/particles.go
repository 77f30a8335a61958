package system

import (
	"slices"

	"dungeon-arcanum/internal/component"
)

// SpawnParticle appends a particle at pos with the given lifetime.
func SpawnParticle(ps []component.Particle, pos component.Vec, life float64) []component.Particle {
	return append(ps, component.Particle{Pos: pos, Life: life, MaxLife: life})
}

// AgeParticles subtracts dt from every particle's life and removes the ones
// that reached zero in the same pass.
func AgeParticles(ps []component.Particle, dt float64) []component.Particle {
	for i := range ps {
		ps[i].Life -= dt
	}
	return slices.DeleteFunc(ps, func(p component.Particle) bool { return p.Life <= 0 })
}
