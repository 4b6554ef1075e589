package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/platform/gpu"
	"github.com/vovakirdan/bombjack/internal/registry"
)

var (
	flagAtlas string
	flagScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key presses and releases.

The sprite sheet is read from --atlas, or from atlas.path in the config.
Without one, a placeholder sheet is painted so the game is still playable.

Controls:
  Up/W/Space  - Jump
  Left/A      - Move left
  Right/D     - Move right
  P           - Pause
  R           - Restart (after the round is cleared)
  Esc/Q       - Quit

Examples:
  bombjack window
  bombjack window bombjack-debug
  bombjack window --atlas ./sheet.png --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAtlas, "atlas", "", "Path to the PNG sprite sheet")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bombjack list' to see available games", gameID)
	}

	logger, closer, err := newLogger("window", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	sheet := flagAtlas
	if sheet == "" {
		sheet = cfg.Atlas.Path
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

	return gpu.Run(game, gpu.Options{
		Store:     store,
		Player:    playerName(),
		Sounds:    sounds,
		Logger:    logger,
		SheetPath: sheet,
		Scale:     flagScale,
		TickRate:  flagFPS,
	})
}
