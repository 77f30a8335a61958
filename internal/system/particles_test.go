package system

import (
	"testing"

	"dungeon-arcanum/internal/component"
)

func TestAgeParticlesRemovesExpired(t *testing.T) {
	var ps []component.Particle
	ps = SpawnParticle(ps, component.Vec{X: 1, Y: 1}, 0.6)
	ps = SpawnParticle(ps, component.Vec{X: 2, Y: 2}, 0.1)
	ps = SpawnParticle(ps, component.Vec{X: 3, Y: 3}, 0.05)

	ps = AgeParticles(ps, 0.05)
	if len(ps) != 2 {
		t.Fatalf("particle reaching exactly 0 must go the same step; have %d", len(ps))
	}
	if !approx(ps[0].Life, 0.55) || ps[0].MaxLife != 0.6 {
		t.Errorf("first particle = %+v", ps[0])
	}
	for range 20 {
		ps = AgeParticles(ps, 0.05)
	}
	if len(ps) != 0 {
		t.Errorf("all particles should have expired, have %d", len(ps))
	}
}
