// Package assets holds the glyph sets used to draw the dungeon.
package assets

// Emoji constants used as actor and effect glyphs.
const (
	GlyphPlayer = "🧙"
	GlyphEnemy  = "👹"
	GlyphSpark  = "✨" // fresh hit particle
	GlyphEmber  = "🔸" // fading hit particle
)

// Theme is the terrain glyph set for one dungeon. Emoji are rendered by the
// terminal with their own colors, so cells outside the light get distinct
// dim glyphs instead of a tinted foreground.
type Theme struct {
	Name     string
	Wall     string // lit wall
	Floor    string // lit floor
	DimWall  string // wall beyond the light radius
	DimFloor string // floor beyond the light radius
}

// Themes cycles with the dungeon level.
var Themes = []Theme{
	{
		// Crypt: stone and dust
		Name:     "Crypt",
		Wall:     "🧱",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "⬛",
	},
	{
		// Flooded halls
		Name:     "Sunken Halls",
		Wall:     "🪨",
		Floor:    "🟦",
		DimWall:  "🌑",
		DimFloor: "⬛",
	},
	{
		// Fungal caverns
		Name:     "Mycelium Deep",
		Wall:     "🍄",
		Floor:    "🟩",
		DimWall:  "🌑",
		DimFloor: "⬛",
	},
}

// ThemeFor returns the theme for a 1-indexed level.
func ThemeFor(level int) Theme {
	if level < 1 {
		level = 1
	}
	return Themes[(level-1)%len(Themes)]
}

// ASCII is the single-width glyph set used by text dumps.
var ASCII = Theme{
	Name:     "ASCII",
	Wall:     "#",
	Floor:    ".",
	DimWall:  "#",
	DimFloor: " ",
}
