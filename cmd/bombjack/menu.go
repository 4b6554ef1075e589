package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games and browse scores interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab to open
the scoreboard. After a round, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bombjack menu
  bombjack menu --fps 30
  bombjack menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("menu", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sounds, stop := newSounds(logger)
	defer stop()

	return tui.RunSession(terminalConfig(), tui.ModelOptions{
		Store:      store,
		Player:     playerName(),
		Sounds:     sounds,
		Logger:     logger,
		HoldWindow: time.Duration(cfg.Input.HoldMillis) * time.Millisecond,
	})
}
