package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/logging"
	"github.com/vovakirdan/bombjack/internal/platform/round"
	"github.com/vovakirdan/bombjack/internal/registry"
	"github.com/vovakirdan/bombjack/internal/storage"
)

// ModelOptions configures a GameModel. Zero values are usable.
type ModelOptions struct {
	Store      *storage.Store // Nil disables score saving
	Player     string         // Name stored with scores
	Sounds     core.Sounds    // Nil plays nothing
	Logger     *log.Logger    // Nil discards logs
	Clock      core.Clock     // Nil uses the system clock
	HoldWindow time.Duration  // How long a key press counts as held
	AllowMenu  bool           // Whether Back returns to a menu
}

func (o ModelOptions) withDefaults() ModelOptions {
	if o.Sounds == nil {
		o.Sounds = core.Silence{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = 300 * time.Millisecond
	}
	if o.Player == "" {
		o.Player = "player"
	}
	return o
}

// GameModel is the Bubble Tea model for playing one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       ModelOptions
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *HeldKeys
	help       help.Model
	inputFrame core.InputFrame
	round      *round.Round
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The last screen row is reserved for
// the key help line.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	opts = opts.withDefaults()
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(opts.HoldWindow),
		help:       h,
		inputFrame: core.NewInputFrame(),
		round: round.New(game, round.Options{
			Store:  opts.Store,
			Player: opts.Player,
			Sounds: opts.Sounds,
			Logger: opts.Logger,
		}),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.round.Start(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.round.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	dir, action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.round.Save("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		state := m.round.State()
		if m.opts.AllowMenu && (state.GameOver || state.Paused) {
			m.round.Save("menu")
			m.backToMenu = true
		}
		return m, nil

	case core.ActionNone:
		m.held.Press(dir, m.opts.Clock.Now())

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one platform frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.inputFrame.Held = m.held.Snapshot(m.opts.Clock.Now())
	if outcome, _ := m.round.Frame(m.inputFrame); outcome == round.Restarted {
		m.held.Release()
	}

	// Clear one-shot actions for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bombjack", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.round.State()
}

// Run plays a game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
