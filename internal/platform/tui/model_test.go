package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// stubGame records what the model hands it and replays scripted results.
type stubGame struct {
	resets  int
	inputs  []core.InputFrame
	results []core.StepResult
	state   core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	frame.Held = in.Held
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)

	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState { return g.state }

type soundLog struct {
	collects, jumps, clears int
}

func (s *soundLog) PlayCollect() { s.collects++ }
func (s *soundLog) PlayJump()    { s.jumps++ }
func (s *soundLog) PlayClear()   { s.clears++ }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(game *stubGame, opts ModelOptions) (GameModel, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts.Clock = clock
	m := NewGameModel(game, core.DefaultConfig(), opts)
	m.Init()
	return m, clock
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func TestGameModelInitResetsGame(t *testing.T) {
	game := &stubGame{}
	newTestModel(game, ModelOptions{})
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestGameModelHeldDirections(t *testing.T) {
	game := &stubGame{}
	m, clock := newTestModel(game, ModelOptions{HoldWindow: 300 * time.Millisecond})

	m = update(t, m, runeKey('w'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(clock.now))

	clock.now = clock.now.Add(400 * time.Millisecond)
	m = update(t, m, TickMsg(clock.now))

	if len(game.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(game.inputs))
	}
	if got := game.inputs[0].Held; got != (core.InputSnapshot{Up: true, Right: true}) {
		t.Errorf("first frame held = %+v, expected up and right", got)
	}
	if game.inputs[1].Held != (core.InputSnapshot{}) {
		t.Errorf("held directions should expire, got %+v", game.inputs[1].Held)
	}
	_ = m
}

func TestGameModelActionsAreOneShot(t *testing.T) {
	game := &stubGame{}
	m, clock := newTestModel(game, ModelOptions{})

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(clock.now))
	m = update(t, m, TickMsg(clock.now))

	if !game.inputs[0].Has(core.ActionPause) {
		t.Error("first frame should carry the pause action")
	}
	if game.inputs[1].Has(core.ActionPause) {
		t.Error("pause action should be cleared after one frame")
	}
	_ = m
}

func TestGameModelEventsPlaySounds(t *testing.T) {
	sounds := &soundLog{}
	game := &stubGame{results: []core.StepResult{
		{State: core.GameState{Score: 100}, Ticked: true, Jumped: true, Collected: 1},
		{State: core.GameState{Score: 200, GameOver: true}, Ticked: true, Collected: 1, Cleared: true},
	}}
	m, clock := newTestModel(game, ModelOptions{Sounds: sounds})

	m = update(t, m, TickMsg(clock.now))
	m = update(t, m, TickMsg(clock.now))

	if sounds.jumps != 1 || sounds.collects != 2 || sounds.clears != 1 {
		t.Errorf("sounds = %+v, expected 1 jump, 2 collects, 1 clear", *sounds)
	}
	if !m.State().GameOver || m.State().Score != 200 {
		t.Errorf("State() = %+v, expected cleared round with 200 points", m.State())
	}
}

func TestGameModelSavesClearedRoundOnce(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{results: []core.StepResult{
		{State: core.GameState{Score: 100}, Ticked: true, Collected: 1},
		{State: core.GameState{Score: 200, GameOver: true}, Ticked: true, Collected: 1, Cleared: true},
	}}
	m, clock := newTestModel(game, ModelOptions{Store: store, Player: "jack"})

	m = update(t, m, TickMsg(clock.now))
	m = update(t, m, TickMsg(clock.now))
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(GameModel).IsQuitting() {
		t.Fatal("quit key should stop the program")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Player != "jack" || got.Score != 200 || got.Bombs != 2 {
		t.Errorf("saved %+v, expected jack with 200 points and 2 bombs", got)
	}
}

func TestGameModelQuitSkipsEmptyRound(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{}
	m, clock := newTestModel(game, ModelOptions{Store: store})

	m = update(t, m, TickMsg(clock.now))
	update(t, m, runeKey('q'))

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores for an empty round, expected 0", len(scores))
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	playing := core.StepResult{State: core.GameState{Score: 100}}
	over := core.StepResult{State: core.GameState{Score: 100, GameOver: true}}

	tests := []struct {
		name      string
		result    core.StepResult
		allowMenu bool
		want      bool
	}{
		{"ignored while playing", playing, true, false},
		{"after round", over, true, true},
		{"without menu", over, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &stubGame{results: []core.StepResult{tc.result}}
			m, clock := newTestModel(game, ModelOptions{AllowMenu: tc.allowMenu})
			m = update(t, m, TickMsg(clock.now))
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.BackToMenu() != tc.want {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tc.want)
			}
		})
	}
}

func TestGameModelRestartAfterRound(t *testing.T) {
	game := &stubGame{results: []core.StepResult{
		{State: core.GameState{Score: 100, GameOver: true}, Cleared: true, Collected: 1},
	}}
	m, clock := newTestModel(game, ModelOptions{})

	m = update(t, m, TickMsg(clock.now))
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(clock.now))

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
	if len(game.inputs) != 1 {
		t.Errorf("restart frame should not step the game, steps = %d", len(game.inputs))
	}
}

func TestGameModelView(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(game, ModelOptions{})

	view := m.View()
	if !strings.Contains(view, "STUB") {
		t.Error("view should contain the game's render output")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should end with the key help line")
	}
}
