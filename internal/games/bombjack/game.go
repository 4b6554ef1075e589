// Package bombjack implements a Bomb Jack style platformer: Jack jumps and
// glides around a fixed stage collecting bombs. The simulation lives in
// Session; Game adapts it to the platform's registry.Game interface.
package bombjack

import (
	"fmt"

	"github.com/vovakirdan/bombjack/internal/config"
	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/registry"
)

// Glyphs used by terminal rendering. The background has no glyph so the
// terminal stays dark behind the level.
var Glyphs = core.GlyphTable{
	"platform":       {Rune: '▀', Color: ColorPlatform},
	"bomb.live":      {Rune: '●', Color: core.ColorBrightRed},
	"bomb.collected": {Rune: '·', Color: core.ColorGray},
	"jack":           {Rune: '█', Color: core.ColorBrightBlue},
	"jack.up":        {Rune: '▲', Color: core.ColorBrightBlue},
	"jack.down":      {Rune: '▼', Color: core.ColorBrightBlue},
	"jack.left":      {Rune: '◀', Color: core.ColorBrightBlue},
	"jack.right":     {Rune: '▶', Color: core.ColorBrightBlue},
	"jack.upleft":    {Rune: '◤', Color: core.ColorBrightBlue},
	"jack.upright":   {Rune: '◥', Color: core.ColorBrightBlue},
}

// ColorPlatform is the terminal color of platforms and the stage border.
const ColorPlatform = core.ColorOrange

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform.
type Game struct {
	id      string
	title   string
	debug   bool
	clock   core.Clock
	cfg     config.BombJackConfig
	session *Session
	runtime core.RuntimeConfig

	paused   bool
	gameOver bool

	camera *core.Camera
	canvas *core.Screen
}

// New creates a Bomb Jack game. Debug games also draw hitboxes, platform
// ground bands and the ground probe.
func New(debug bool) *Game {
	g := &Game{id: "bombjack", title: "Bomb Jack", debug: debug, clock: core.SystemClock{}}
	if debug {
		g.id = "bombjack-debug"
		g.title = "Bomb Jack (debug)"
	}
	return g
}

// NewWithClock creates a game driven by the given clock.
func NewWithClock(debug bool, clock core.Clock) *Game {
	g := New(debug)
	g.clock = clock
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new round on the classic level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBombJack(configPath)
	if err != nil {
		cfg = config.DefaultBombJackConfig()
	}
	g.cfg = cfg

	session, err := NewSession(ClassicLevel(), cfg, g.clock)
	if err != nil {
		// Built-in content failed to load.
		panic(fmt.Sprintf("bombjack: %v", err))
	}
	g.session = session
	g.paused = false
	g.gameOver = false
}

// Step offers the held directions to the session. The session decides
// whether enough time has passed to run a tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.session.Update(in.Held) {
		return core.StepResult{State: g.State()}
	}

	result := core.StepResult{
		Ticked:    true,
		Collected: g.session.LastCollected(),
		Jumped:    g.session.LastLaunched(),
	}
	if g.session.Cleared() {
		g.gameOver = true
		result.Cleared = true
	}
	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{Score: score, GameOver: g.gameOver, Paused: g.paused}
}

// Session returns the running session, nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration the current round was started with.
func (g *Game) Config() config.BombJackConfig {
	return g.cfg
}

// DrawList returns the primitives for sprite renderers, including the debug
// overlay for debug games.
func (g *Game) DrawList() core.DrawList {
	list := g.session.DrawList()
	if g.debug {
		list.Add(g.session.DebugOverlay()...)
	}
	return list
}

// Sheet describes the sprite sheet of the current round, or of the default
// configuration before the first Reset.
func (g *Game) Sheet() core.SheetLayout {
	var w, h float64
	if g.session != nil {
		w, h = g.session.Atlas().Size()
	} else {
		def := config.DefaultBombJackConfig()
		w, h = def.Atlas.Width, def.Atlas.Height
	}
	return core.SheetLayout{Width: w, Height: h, Regions: SheetRegions()}
}

// Render draws the level below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()-1
	if w <= 0 || h <= 0 || g.session == nil {
		return
	}

	if g.canvas == nil {
		g.canvas = core.NewScreen(w, h)
		g.camera = core.NewCamera(WorldWidth, WorldHeight, float64(w), float64(h))
	} else if g.canvas.Width() != w || g.canvas.Height() != h {
		g.canvas.Resize(w, h)
		g.camera.SetViewport(float64(w), float64(h))
	}

	g.canvas.Clear()
	g.canvas.DrawBox(g.camera.ProjectRect(g.session.Level().Bounds()), ColorPlatform)
	core.Rasterize(g.canvas, g.DrawList(), g.camera, Glyphs)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := g.canvas.GetCell(x, y)
			dst.SetColored(x, y+1, cell.Rune, cell.Color)
		}
	}

	g.renderHUD(dst)
}

// renderHUD draws the score line and round messages.
func (g *Game) renderHUD(dst *core.Screen) {
	score := "SCORE " + core.FormatScore(g.session.Score())
	dst.DrawTextColored(1, 0, score, core.ColorRed)

	bombs := fmt.Sprintf("BOMBS %d/%d", g.session.Collected(), len(g.session.Bombs()))
	dst.DrawTextColored(dst.Width()-len(bombs)-1, 0, bombs, core.ColorYellow)

	mid := dst.Height() / 2
	switch {
	case g.gameOver:
		dst.DrawTextCentered(mid, " ROUND CLEAR ")
		dst.DrawTextCentered(mid+1, " R restart, Q quit ")
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ")
	}
}

// Register games with the registry
func init() {
	registry.Register("bombjack", func() registry.Game { return New(false) })
	registry.Register("bombjack-debug", func() registry.Game { return New(true) })
}
