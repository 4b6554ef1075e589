// bombjack is a Bomb Jack style platformer for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	bombjack list             - List available games
//	bombjack play [game]      - Play in the terminal
//	bombjack menu             - Pick games and browse scores interactively
//	bombjack window [game]    - Play in a desktop window
//	bombjack serve            - Start SSH server for remote play
//	bombjack scores [game]    - Show high scores
//	bombjack config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set platform frame rate (default: 60)
//	--db <path>         - Set database path (default: ~/.bombjack/scores.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--mute              - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bombjack/internal/audio"
	"github.com/vovakirdan/bombjack/internal/config"
	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/games/bombjack"
	"github.com/vovakirdan/bombjack/internal/logging"
	"github.com/vovakirdan/bombjack/internal/storage"
)

const defaultGame = "bombjack"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bombjack",
	Short: "Bomb Jack - collect every bomb",
	Long: `Bomb Jack is a small platformer: jump and glide around the stage and
collect all the bombs. Play it in your terminal, in a window, or over SSH.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Interactive game picker with scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  bombjack play
  bombjack play bombjack-debug
  bombjack window --atlas ./sheet.png
  bombjack serve --ssh :2222
  bombjack scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		bombjack.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Platform frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bombjack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Full-screen commands discard logs
// unless --log-file is set, since the terminal belongs to the UI.
func newLogger(prefix string, fullScreen bool) (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return logging.OpenFile(flagLogFile, flagLogLevel, prefix)
	}
	if fullScreen {
		return logging.Discard(), noClose{}, nil
	}
	logger, err := logging.New(os.Stderr, flagLogLevel, prefix)
	return logger, noClose{}, err
}

// openStore opens the score database. Scores are optional, so failures are
// logged and play continues without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadConfig resolves the game configuration for the platform layers.
func loadConfig(logger *log.Logger) (config.BombJackConfig, error) {
	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return config.BombJackConfig{}, err
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg, nil
}

// newSounds starts the speaker unless muted. The returned cleanup is always
// safe to call.
func newSounds(logger *log.Logger) (core.Sounds, func()) {
	if flagMute {
		return core.Silence{}, func() {}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return core.Silence{}, func() {}
	}
	return sm, sm.Cleanup
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// gameArg returns the requested game ID, defaulting to the classic game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// playerName is the name stored with local scores.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

type noClose struct{}

func (noClose) Close() error { return nil }
