package render

import (
	"dungeon-arcanum/assets"
	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 6

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{}}
	r.Resize()
	return r
}

// Resize refits the map viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 0)
}

// Camera exposes the viewport, mainly for tests.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders the map, particles and actors centered on the player.
// It does not call Show; DrawHUD finishes the frame.
func (r *Renderer) DrawFrame(s *game.State) {
	r.screen.Clear()
	r.camera.Center(s.Player.Pos.X, s.Player.Pos.Y)
	theme := assets.ThemeFor(s.Level)
	r.drawMap(s, theme)
	r.drawParticles(s)
	r.drawActors(s)
}

// drawMap renders every tile in view, lit by distance to the player.
func (r *Renderer) drawMap(s *game.State, theme assets.Theme) {
	gmap := s.Map
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.TileToScreen(x, y)
			if !onScreen {
				continue
			}
			center := component.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			d := center.Dist(s.Player.Pos)
			k := Brightness(d)

			wall := gmap.IsWall(x, y)
			glyph, rgb := theme.Floor, floorRGB
			if wall {
				glyph, rgb = theme.Wall, wallRGB
			}
			if !Lit(d) {
				glyph = theme.DimFloor
				if wall {
					glyph = theme.DimWall
				}
			}
			r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Background(shade(rgb, k)))
		}
	}
}

// drawParticles renders hit sparks, switching glyph as they fade.
func (r *Renderer) drawParticles(s *game.State) {
	for _, p := range s.Particles {
		sx, sy, onScreen := r.camera.PointToScreen(p.Pos.X, p.Pos.Y)
		if !onScreen {
			continue
		}
		glyph := assets.GlyphSpark
		if p.Fade() < 0.5 {
			glyph = assets.GlyphEmber
		}
		r.putGlyph(sx, sy, glyph, r.styleAt(sx, sy))
	}
}

// drawActors renders enemies inside the light, then the player on top.
func (r *Renderer) drawActors(s *game.State) {
	for _, e := range s.Enemies {
		if !Lit(e.Pos.Dist(s.Player.Pos)) {
			continue
		}
		r.drawActor(e, assets.GlyphEnemy)
	}
	r.drawActor(s.Player, assets.GlyphPlayer)
}

func (r *Renderer) drawActor(a *component.Actor, glyph string) {
	sx, sy, onScreen := r.camera.PointToScreen(a.Pos.X, a.Pos.Y)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, r.styleAt(sx, sy))
}

// styleAt returns the style already drawn at (x, y) so sprites keep the
// lit background of the tile beneath them.
func (r *Renderer) styleAt(x, y int) tcell.Style {
	_, _, style, _ := r.screen.GetContent(x, y)
	return style
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
