package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/pkg/config"
)

// loadConfig resolves the effective configuration for a command, honoring
// the root --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Default(), fmt.Errorf("get config flag: %w", err)
	}

	cfg, _, err := config.Load(config.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}

// colorMode returns the effective color mode: the --color flag when set,
// otherwise the configured mode.
func colorMode(cmd *cobra.Command, cfg config.Config) string {
	mode, err := cmd.Flags().GetString("color")
	if err == nil && cmd.Flags().Changed("color") {
		return mode
	}
	if cfg.Color != "" {
		return string(cfg.Color)
	}
	return string(config.ColorAuto)
}

// readInput reads the description text from the given path, or from stdin
// when path is "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
