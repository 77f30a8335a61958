// Package i18n turns game events and HUD labels into localized text.
package i18n

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeon-arcanum/internal/game"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is used when no locale is configured.
const DefaultLanguage = "en"

// Catalog looks up translated strings for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Languages lists the bundled locales.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	slices.Sort(out)
	return out
}

// New loads the catalog for lang. Region suffixes are ignored, so "es_AR"
// and "es-MX" resolve to "es".
func New(lang string) (*Catalog, error) {
	base := DefaultLanguage
	if parts := strings.FieldsFunc(lang, func(r rune) bool { return r == '_' || r == '-' || r == '.' }); len(parts) > 0 {
		base = strings.ToLower(parts[0])
	}
	data, err := locales.ReadFile("locales/" + base + ".po")
	if err != nil {
		return nil, fmt.Errorf("i18n: no catalog for %q (have %s)", lang, strings.Join(Languages(), ", "))
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: base, po: po}, nil
}

// Language returns the resolved language code.
func (c *Catalog) Language() string { return c.lang }

// Get returns the translation of key, formatted with args. Unknown keys
// come back unchanged.
func (c *Catalog) Get(key string, args ...any) string {
	return c.po.Get(key, args...)
}

// Item returns the display name of an inventory item identifier.
func (c *Catalog) Item(id string) string {
	key := "ITEM_" + id
	if s := c.po.Get(key); s != key {
		return s
	}
	return id
}

// Event describes a simulation event as a log line.
func (c *Catalog) Event(ev game.Event) string {
	switch ev.Kind {
	case game.EventEnemyHit:
		if ev.Killed {
			return c.Get("ENEMY_KILLED")
		}
		return c.Get("ENEMY_HIT", ev.Amount)
	case game.EventPlayerHurt:
		return c.Get("PLAYER_HURT", ev.Amount)
	case game.EventPlayerDied:
		return c.Get("PLAYER_DIED")
	case game.EventItemFound:
		return c.Get("ITEM_FOUND", c.Item(ev.Item))
	}
	return ""
}
