package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/platform/tui"
	"github.com/vovakirdan/bombjack/internal/registry"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The game defaults to bombjack.

Controls:
  Up/W/Space  - Jump (hold to glide higher)
  Left/A      - Move left
  Right/D     - Move right
  P           - Pause
  R           - Restart (after the round is cleared)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a text screenshot

Terminals do not report key releases, so a direction stays held while
its key keeps repeating.

Examples:
  bombjack play
  bombjack play --debug
  bombjack play --config ./my-bombjack.yaml --log-file ./bombjack.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw hitboxes, ground bands and the ground probe")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if flagDebug && gameID == defaultGame {
		gameID = defaultGame + "-debug"
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bombjack list' to see available games", gameID)
	}

	logger, closer, err := newLogger("play", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sounds, stop := newSounds(logger)
	defer stop()

	return tui.Run(game, terminalConfig(), tui.ModelOptions{
		Store:      store,
		Player:     playerName(),
		Sounds:     sounds,
		Logger:     logger,
		HoldWindow: time.Duration(cfg.Input.HoldMillis) * time.Millisecond,
	})
}
