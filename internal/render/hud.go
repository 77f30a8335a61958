package render

import (
	"fmt"
	"strings"

	"dungeon-arcanum/assets"
	"dungeon-arcanum/internal/game"
	"dungeon-arcanum/internal/i18n"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line, inventory, newest log lines and key
// help below the map, then shows the frame. lines is newest first.
func (r *Renderer) DrawHUD(s *game.State, cat *i18n.Catalog, lines []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	hp := max(s.Player.HP, 0)
	x := r.drawText(0, hudY+1, fmt.Sprintf("%s: %d/%d", cat.Get("HUD_HP"), hp, s.Player.MaxHP),
		tcell.StyleDefault.Foreground(hpColor(hp, s.Player.MaxHP)))
	status := fmt.Sprintf("  %s: %d  %s: %d", cat.Get("HUD_LEVEL"), s.Level, cat.Get("HUD_SCORE"), s.Score)
	r.drawText(x, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.drawText(0, hudY+2, cat.Get("HUD_INVENTORY")+": "+inventoryLine(s, cat),
		tcell.StyleDefault.Foreground(tcell.ColorLightCyan))

	for i := 0; i < 2 && i < len(lines); i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
		if i > 0 {
			style = style.Dim(true)
		}
		r.drawText(0, hudY+3+i, lines[i], style)
	}

	r.drawText(0, hudY+5, cat.Get("HUD_HELP"), tcell.StyleDefault.Foreground(tcell.ColorGray))

	if !s.Running {
		r.drawBanner(cat.Get("PLAYER_DIED"))
	}
	r.screen.Show()
}

// inventoryLine lists item names with repeat counts, in pickup order.
func inventoryLine(s *game.State, cat *i18n.Catalog) string {
	inv := s.Player.Player.Inventory
	if len(inv) == 0 {
		return cat.Get("HUD_EMPTY")
	}
	var order []string
	counts := map[string]int{}
	for _, it := range inv {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	parts := make([]string, 0, len(order))
	for _, it := range order {
		name := assets.ItemGlyph(it) + " " + cat.Item(it)
		if n := counts[it]; n > 1 {
			name = fmt.Sprintf("%s x%d", name, n)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// drawBanner centers msg over the map area.
func (r *Renderer) drawBanner(msg string) {
	text := " " + msg + " "
	x := max((r.camera.ViewWidth-runewidth.StringWidth(text))/2, 0)
	y := r.camera.ViewHeight / 2
	r.drawText(x, y, text, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
