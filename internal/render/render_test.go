package render

import (
	"math"
	"strings"
	"testing"

	"dungeon-arcanum/assets"
	"dungeon-arcanum/internal/component"
	"dungeon-arcanum/internal/game"
	"dungeon-arcanum/internal/i18n"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func newState(t *testing.T) *game.State {
	t.Helper()
	s, err := game.New(game.DefaultRules(), 3)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return s
}

func TestCameraCentersOnPlayer(t *testing.T) {
	c := NewCamera(40, 20)
	c.Center(15.5, 12.5)
	sx, sy, ok := c.PointToScreen(15.5, 12.5)
	if !ok || sx != 20 || sy != 10 {
		t.Errorf("player at screen (%d,%d,%v), want (20,10,true)", sx, sy, ok)
	}
	tx, ty, ok := c.TileToScreen(15, 12)
	if !ok || tx != sx || ty != sy {
		t.Errorf("player tile at (%d,%d), want same cell as sprite", tx, ty)
	}
	if wx, wy := c.ScreenToWorld(tx, ty); wx != 15 || wy != 12 {
		t.Errorf("ScreenToWorld = (%d,%d), want (15,12)", wx, wy)
	}
}

func TestCameraHalfTileResolution(t *testing.T) {
	c := NewCamera(40, 20)
	c.Center(10, 10)
	a, _, _ := c.PointToScreen(10.5, 10)
	b, _, _ := c.PointToScreen(11.0, 10)
	if b-a != 1 {
		t.Errorf("half-tile move shifted %d columns, want 1", b-a)
	}
}

func TestCameraOffscreen(t *testing.T) {
	c := NewCamera(20, 10)
	c.Center(5, 5)
	if _, _, ok := c.TileToScreen(100, 5); ok {
		t.Error("distant tile reported visible")
	}
	if _, _, ok := c.PointToScreen(5, -20); ok {
		t.Error("point above the view reported visible")
	}
}

func TestBrightness(t *testing.T) {
	if Brightness(0) != 1 || Brightness(LightInner) != 1 {
		t.Error("inside the inner radius should be fully lit")
	}
	if Brightness(LightOuter) != MinLight || Brightness(100) != MinLight {
		t.Error("beyond the outer radius should be at minimum light")
	}
	prev := 2.0
	for d := 0.0; d < 8; d += 0.25 {
		b := Brightness(d)
		if b > prev || math.IsNaN(b) {
			t.Fatalf("brightness not monotonic at %v: %v after %v", d, b, prev)
		}
		prev = b
	}
	if !Lit(6.9) || Lit(7) {
		t.Error("Lit should switch at the outer radius")
	}
}

func TestDrawFrameShowsPlayer(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewRenderer(screen)
	s := newState(t)

	r.DrawFrame(s)
	sx, sy, ok := r.Camera().PointToScreen(s.Player.Pos.X, s.Player.Pos.Y)
	if !ok {
		t.Fatal("player should be on screen")
	}
	mainc, _, _, _ := screen.GetContent(sx, sy)
	if want := []rune(assets.GlyphPlayer)[0]; mainc != want {
		t.Errorf("cell at player = %q, want %q", mainc, want)
	}
}

func TestDrawFrameHidesUnlitEnemies(t *testing.T) {
	screen := newSimScreen(t, 120, 60)
	r := NewRenderer(screen)
	s := newState(t)
	far := component.NewEnemy(99, s.Player.Pos.Add(component.Vec{X: 0, Y: 8}), 40, 1.2, 0.8, 10)
	near := component.NewEnemy(100, s.Player.Pos.Add(component.Vec{X: 2, Y: 0}), 40, 1.2, 0.8, 10)
	s.Enemies = []*component.Actor{far, near}

	r.DrawFrame(s)
	enemy := []rune(assets.GlyphEnemy)[0]
	if sx, sy, ok := r.Camera().PointToScreen(near.Pos.X, near.Pos.Y); ok {
		if c, _, _, _ := screen.GetContent(sx, sy); c != enemy {
			t.Errorf("lit enemy not drawn, found %q", c)
		}
	}
	if sx, sy, ok := r.Camera().PointToScreen(far.Pos.X, far.Pos.Y); ok {
		if c, _, _, _ := screen.GetContent(sx, sy); c == enemy {
			t.Error("enemy beyond the light should not be drawn")
		}
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newSimScreen(t, 100, 30)
	r := NewRenderer(screen)
	cat, err := i18n.New("en")
	if err != nil {
		t.Fatal(err)
	}
	s := newState(t)
	s.Player.Player.AddItem("potion")
	s.Player.Player.AddItem("potion")
	s.Score = 20

	r.DrawFrame(s)
	r.DrawHUD(s, cat, []string{"12:00:01 — newest", "12:00:00 — older", "11:59:59 — oldest"})

	hudY := 30 - HUDRows
	if got := rowText(screen, hudY+1); !strings.Contains(got, "HP: 100/100") || !strings.Contains(got, "Score: 20") {
		t.Errorf("status row = %q", got)
	}
	if got := rowText(screen, hudY+2); !strings.HasPrefix(got, "Inventory: ") || !strings.Contains(got, "potion x2") {
		t.Errorf("inventory row = %q", got)
	}
	if got := rowText(screen, hudY+3); !strings.Contains(got, "newest") {
		t.Errorf("first log row = %q, want newest line", got)
	}
	for y := hudY; y < 30; y++ {
		if strings.Contains(rowText(screen, y), "oldest") {
			t.Error("only two log lines fit the HUD")
		}
	}
}

func TestDrawHUDDeathBanner(t *testing.T) {
	screen := newSimScreen(t, 100, 30)
	r := NewRenderer(screen)
	cat, err := i18n.New("es")
	if err != nil {
		t.Fatal(err)
	}
	s := newState(t)
	s.Player.HP = 0
	s.Running = false

	r.DrawFrame(s)
	r.DrawHUD(s, cat, nil)
	found := false
	for y := 0; y < 30-HUDRows; y++ {
		if strings.Contains(rowText(screen, y), "Has muerto") {
			found = true
		}
	}
	if !found {
		t.Error("death banner not drawn")
	}
	if got := rowText(screen, 30-HUDRows+2); !strings.Contains(got, "(vacío)") {
		t.Errorf("empty inventory row = %q", got)
	}
}
