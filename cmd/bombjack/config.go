package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new round would use, and where it came from.

Search order:
  --config path
  ~/.bombjack/configs/bombjack.yaml
  ./configs/bombjack.yaml
  built-in defaults

With --init, the built-in defaults are written to the user config path
(it is never overwritten).

Examples:
  bombjack config
  bombjack config --config ./my-bombjack.yaml
  bombjack config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config to ~/.bombjack/configs")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigInit {
		return initUserConfig()
	}

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
	return nil
}

func initUserConfig() error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
