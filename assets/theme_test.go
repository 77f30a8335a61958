package assets

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestThemeForCycles(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, "Crypt"},
		{1, "Crypt"},
		{2, "Sunken Halls"},
		{3, "Mycelium Deep"},
		{4, "Crypt"},
	}
	for _, c := range cases {
		if got := ThemeFor(c.level).Name; got != c.want {
			t.Errorf("ThemeFor(%d) = %q, want %q", c.level, got, c.want)
		}
	}
}

// Every emoji glyph must fill exactly one two-column tile.
func TestGlyphsAreDoubleWidth(t *testing.T) {
	glyphs := []string{GlyphPlayer, GlyphEnemy, GlyphSpark, GlyphEmber}
	for _, th := range Themes {
		glyphs = append(glyphs, th.Wall, th.Floor, th.DimWall, th.DimFloor)
	}
	for _, g := range glyphs {
		if w := runewidth.StringWidth(g); w != 2 {
			t.Errorf("glyph %q has width %d, want 2", g, w)
		}
	}
}

func TestItemGlyph(t *testing.T) {
	if got := ItemGlyph("potion"); got != GlyphPotion {
		t.Errorf("ItemGlyph(potion) = %q", got)
	}
	if got := ItemGlyph("mystery"); got != GlyphUnknown {
		t.Errorf("ItemGlyph(mystery) = %q, want %q", got, GlyphUnknown)
	}
}
