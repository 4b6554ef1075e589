package bombjack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bombjack/internal/config"
	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/registry"
)

// useConfigFile points the game at a config file holding data, so rounds never
// read the user's or the working directory's configuration.
func useConfigFile(t *testing.T, data []byte) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, debug bool) (*Game, *fakeClock) {
	t.Helper()
	useConfigFile(t, config.DefaultYAML())
	clock := newFakeClock()
	g := NewWithClock(debug, clock)
	g.Reset(core.DefaultConfig())
	return g, clock
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"bombjack", "bombjack-debug"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.SpriteSource); !ok {
			t.Errorf("%q should provide a draw-list", id)
		}
	}
}

func TestGameResetConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
	}{
		{"custom reward", "scoring:\n  bomb_reward: 250\n", 250},
		{"invalid file falls back to defaults", "timing:\n  tick_ms: 0\n", 100},
		{"unparsable file falls back to defaults", "scoring: [\n", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfigFile(t, []byte(tt.data))
			g := NewWithClock(false, newFakeClock())
			g.Reset(core.DefaultConfig())

			if got := g.Config().Scoring.BombReward; got != tt.expected {
				t.Errorf("BombReward = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestGameStepGating(t *testing.T) {
	g, clock := newTestGame(t, false)
	in := core.NewInputFrame()

	if res := g.Step(in); res.Ticked {
		t.Error("step ticked before the interval elapsed")
	}
	clock.Advance(tickInterval)
	if res := g.Step(in); !res.Ticked {
		t.Error("step did not tick after the interval elapsed")
	}
}

func TestGamePause(t *testing.T) {
	g, clock := newTestGame(t, false)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	clock.Advance(tickInterval)
	res := g.Step(pause)
	if !res.State.Paused || res.Ticked {
		t.Fatalf("expected paused without a tick, got %+v", res)
	}

	y := g.Session().Character().Position.Y
	clock.Advance(10 * tickInterval)
	g.Step(core.NewInputFrame())
	if g.Session().Character().Position.Y != y {
		t.Error("paused game advanced")
	}

	if res := g.Step(pause); res.State.Paused || !res.Ticked {
		t.Errorf("unpausing should resume with one tick, got %+v", res)
	}
}

func TestGameRoundClear(t *testing.T) {
	g, clock := newTestGame(t, false)
	s := g.Session()

	// Collect every bomb but the last directly, then walk into the last one.
	for _, b := range s.Bombs()[:len(s.Bombs())-1] {
		b.collect()
	}
	s.score = 100 * (len(s.Bombs()) - 1)
	last := s.Bombs()[len(s.Bombs())-1]
	s.Character().Position = last.Position

	clock.Advance(tickInterval)
	res := g.Step(core.NewInputFrame())
	if !res.Cleared || !res.State.GameOver {
		t.Fatalf("expected round clear, got %+v", res)
	}
	if res.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", res.Collected)
	}
	if res.State.Score != 2000 {
		t.Errorf("score = %d, expected 2000", res.State.Score)
	}

	// Finished rounds ignore further input until Reset.
	clock.Advance(tickInterval)
	if res := g.Step(core.NewInputFrame()); res.Ticked {
		t.Error("finished round should not tick")
	}

	g.Reset(core.DefaultConfig())
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("Reset should start a fresh round, got %+v", g.State())
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, false)
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE 0") || !strings.Contains(hud, "BOMBS 0/20") {
		t.Errorf("HUD = %q", hud)
	}
	if !strings.ContainsRune(screen.String(), '●') {
		t.Error("live bombs not drawn")
	}
	if !strings.ContainsRune(screen.String(), '█') {
		t.Error("jack not drawn")
	}

	// Resizing keeps rendering within the new screen
	screen.Resize(40, 20)
	g.Render(screen)
	if len([]rune(screen.Row(0))) != 40 {
		t.Errorf("HUD row width = %d, expected 40", len([]rune(screen.Row(0))))
	}
}

func TestGameDebugDrawList(t *testing.T) {
	plain, _ := newTestGame(t, false)
	debug, _ := newTestGame(t, true)

	if len(debug.DrawList().Items) <= len(plain.DrawList().Items) {
		t.Error("debug draw-list should include the overlay")
	}
	for _, p := range plain.DrawList().Items {
		if p.Kind == core.PrimitiveRect {
			t.Fatal("plain draw-list should not include debug rects")
		}
	}
}

func TestSheetRegionsFitAtlas(t *testing.T) {
	g, _ := newTestGame(t, false)
	sheet := g.Sheet()

	if sheet.Width != 1162 || sheet.Height != 650 {
		t.Fatalf("sheet size = %vx%v, expected 1162x650", sheet.Width, sheet.Height)
	}

	names := make(map[string]int)
	for _, r := range sheet.Regions {
		names[r.Name]++
		if r.X < 0 || r.Y < 0 || r.X+r.W > sheet.Width || r.Y+r.H > sheet.Height {
			t.Errorf("region %s %+v lies outside the sheet", r.Name, r)
		}
	}

	// Every sprite in the draw-list has at least one region of its name
	for _, p := range g.DrawList().Items {
		if names[p.Name] == 0 {
			t.Errorf("sprite %q has no sheet region", p.Name)
		}
	}
	if names["platform"] != 4 {
		t.Errorf("platform textures = %d, expected 4 distinct", names["platform"])
	}
}

func TestSheetUsesRoundAtlas(t *testing.T) {
	useConfigFile(t, []byte("atlas:\n  width: 2324\n  height: 1300\n"))
	g := NewWithClock(false, newFakeClock())

	if sheet := g.Sheet(); sheet.Width != 1162 || sheet.Height != 650 {
		t.Errorf("sheet before Reset = %vx%v, expected defaults 1162x650", sheet.Width, sheet.Height)
	}

	g.Reset(core.DefaultConfig())
	if sheet := g.Sheet(); sheet.Width != 2324 || sheet.Height != 1300 {
		t.Errorf("sheet after Reset = %vx%v, expected 2324x1300", sheet.Width, sheet.Height)
	}
}
