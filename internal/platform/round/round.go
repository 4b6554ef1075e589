// Package round keeps the per-round bookkeeping shared by every platform:
// stepping the game, playing sounds, counting bombs and saving the score.
package round

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/logging"
	"github.com/vovakirdan/bombjack/internal/registry"
	"github.com/vovakirdan/bombjack/internal/storage"
)

// Outcome tells the platform what a frame did.
type Outcome int

const (
	Stepped   Outcome = iota // The game was offered the input
	Restarted                // A finished round was reset
	Quit                     // The player quit; the score is saved
)

// Options configures a Round. Zero values are usable.
type Options struct {
	Store  *storage.Store // Nil disables score saving
	Player string
	Sounds core.Sounds // Nil plays nothing
	Logger *log.Logger // Nil discards logs
}

// Round drives one game for a platform.
type Round struct {
	game   registry.Game
	opts   Options
	config core.RuntimeConfig

	state core.GameState
	bombs int // Collected in the current round
	saved bool
}

// New creates a round for game. Call Start before the first frame.
func New(game registry.Game, opts Options) *Round {
	if opts.Sounds == nil {
		opts.Sounds = core.Silence{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	return &Round{game: game, opts: opts}
}

// Start resets the game and the round's counters.
func (r *Round) Start(cfg core.RuntimeConfig) {
	r.config = cfg
	r.game.Reset(cfg)
	r.state = r.game.State()
	r.bombs = 0
	r.saved = false
	r.opts.Logger.Info("round started", "game", r.game.ID(), "player", r.opts.Player)
}

// Resize updates the runtime config used by later restarts.
func (r *Round) Resize(width, height int) {
	r.config.ScreenW = width
	r.config.ScreenH = height
}

// Frame handles one platform frame. Quit saves the score, Restart resets a
// finished round, anything else is stepped.
func (r *Round) Frame(in core.InputFrame) (Outcome, core.StepResult) {
	if in.Has(core.ActionQuit) {
		r.Save("quit")
		return Quit, core.StepResult{State: r.state}
	}
	if in.Has(core.ActionRestart) && r.state.GameOver {
		r.Start(r.config)
		return Restarted, core.StepResult{State: r.state}
	}
	return Stepped, r.Step(in)
}

// Step offers input to the game and reacts to what the tick did.
func (r *Round) Step(in core.InputFrame) core.StepResult {
	result := r.game.Step(in)
	r.state = result.State

	if result.Jumped {
		r.opts.Sounds.PlayJump()
	}
	if result.Collected > 0 {
		r.bombs += result.Collected
		r.opts.Sounds.PlayCollect()
		r.opts.Logger.Debug("bomb collected", "score", r.state.Score, "bombs", r.bombs)
	}
	if result.Cleared {
		r.opts.Sounds.PlayClear()
		r.opts.Logger.Info("round cleared", "game", r.game.ID(), "score", r.state.Score)
		r.Save("clear")
	}
	return result
}

// Save stores the round once, skipping empty rounds.
func (r *Round) Save(reason string) {
	if r.saved || r.state.Score <= 0 {
		return
	}
	r.saved = true
	if r.opts.Store == nil {
		return
	}

	_, err := r.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: r.game.ID(),
		Player: r.opts.Player,
		Score:  r.state.Score,
		Bombs:  r.bombs,
	})
	if err != nil {
		r.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	r.opts.Logger.Info("score saved", "reason", reason, "score", r.state.Score, "bombs", r.bombs)
}

// State returns the last game state seen by the round.
func (r *Round) State() core.GameState {
	return r.state
}

// Bombs returns the number of bombs collected this round.
func (r *Round) Bombs() int {
	return r.bombs
}

// Saved reports whether the round's score has been stored.
func (r *Round) Saved() bool {
	return r.saved
}
