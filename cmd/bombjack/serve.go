package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bomb Jack SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the game picker menu.
Scores are stored per-server under the SSH user name (all users share
the same leaderboard). Sessions are silent; sound plays only locally.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bombjack/host_key

Examples:
  bombjack serve                           # Listen on :23234 with auto-generated key
  bombjack serve --ssh :2222               # Listen on port 2222
  bombjack serve --host-key ./my_host_key  # Use specific host key
  bombjack serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("bombjack-ssh", false)
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

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		HoldWindow:  time.Duration(cfg.Input.HoldMillis) * time.Millisecond,
	}

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Bomb Jack SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
