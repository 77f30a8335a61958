package assets

// Item glyphs shown next to inventory entries.
const (
	GlyphPotion  = "🧪"
	GlyphUnknown = "❔"
)

var itemGlyphs = map[string]string{
	"potion": GlyphPotion,
}

// ItemGlyph returns the glyph for an item identifier. Unknown items, which
// can arrive through hand-edited saves, get GlyphUnknown.
func ItemGlyph(id string) string {
	if g, ok := itemGlyphs[id]; ok {
		return g
	}
	return GlyphUnknown
}
