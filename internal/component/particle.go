package component

// Particle is a short-lived visual marker. It never affects simulation.
type Particle struct {
	Pos     Vec
	Life    float64
	MaxLife float64
}

// Fade returns the remaining life as a fraction in [0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
