package render

import "github.com/gdamore/tcell/v2"

// Light radius around the player, in tiles. Inside Inner the scene is at
// full brightness; it fades linearly to MinLight at Outer and stays dim
// beyond.
const (
	LightInner = 0.5
	LightOuter = 7.0
	MinLight   = 0.05
)

// Brightness returns the light level in [MinLight, 1] at distance d from
// the player.
func Brightness(d float64) float64 {
	switch {
	case d <= LightInner:
		return 1
	case d >= LightOuter:
		return MinLight
	}
	t := (d - LightInner) / (LightOuter - LightInner)
	return 1 - t*(1-MinLight)
}

// Lit reports whether a cell at distance d is inside the light radius.
func Lit(d float64) bool { return d < LightOuter }

// Base background colors before lighting.
var (
	wallRGB  = [3]int32{58, 46, 70}
	floorRGB = [3]int32{34, 28, 40}
)

// shade scales an RGB triple by brightness k.
func shade(rgb [3]int32, k float64) tcell.Color {
	return tcell.NewRGBColor(
		int32(float64(rgb[0])*k),
		int32(float64(rgb[1])*k),
		int32(float64(rgb[2])*k),
	)
}

// hpColor picks a foreground for an HP readout.
func hpColor(hp, maxHP int) tcell.Color {
	switch {
	case maxHP <= 0 || hp*4 <= maxHP:
		return tcell.ColorRed
	case hp*2 <= maxHP:
		return tcell.ColorYellow
	}
	return tcell.ColorGreen
}
