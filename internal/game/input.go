package game

import "math"

// diagonalScale keeps diagonal input at roughly unit length.
const diagonalScale = 0.7071

// Intent is the per-step player input: a movement direction plus one-shot
// command flags.
type Intent struct {
	DX, DY float64
	Attack bool
	Pickup bool
}

// NewIntent builds an Intent from digital axis input in {-1, 0, 1}.
// Diagonals are scaled so the magnitude stays at or below 1.
func NewIntent(x, y int, attack, pickup bool) Intent {
	in := Intent{DX: float64(sign(x)), DY: float64(sign(y)), Attack: attack, Pickup: pickup}
	if in.DX != 0 && in.DY != 0 {
		in.DX *= diagonalScale
		in.DY *= diagonalScale
	}
	return in
}

// Moving reports whether the intent carries a direction.
func (in Intent) Moving() bool { return in.DX != 0 || in.DY != 0 }

// sanitize clamps each axis to [-1, 1] and zeroes non-finite values.
func (in Intent) sanitize() Intent {
	in.DX = clampAxis(in.DX)
	in.DY = clampAxis(in.DY)
	return in
}

func clampAxis(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
