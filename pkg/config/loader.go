package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file flowtext looks for.
const FileName = ".flowtext.yaml"

// LoadOptions controls configuration discovery.
type LoadOptions struct {
	// WorkingDir is where discovery starts. Empty means the process cwd.
	WorkingDir string

	// ExplicitPath, when set, is loaded directly and discovery is skipped.
	// A missing explicit file is an error; a missing discovered file is not.
	ExplicitPath string
}

// Load resolves the effective configuration: defaults, overlaid with the
// first config file found (explicit path, working dir, then home dir).
// Returns the config and the path it was loaded from ("" if defaults only).
func Load(opts LoadOptions) (Config, string, error) {
	cfg := Default()

	path, err := resolvePath(opts)
	if err != nil {
		return cfg, "", err
	}
	if path == "" {
		return cfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, "", fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return cfg, "", fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, path, nil
}

func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	candidates := []string{filepath.Join(workDir, FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file: %w", err)
		}
	}

	return "", nil
}

func validate(cfg Config) error {
	if cfg.Color != "" && !cfg.Color.IsValid() {
		return fmt.Errorf("unknown color mode %q", cfg.Color)
	}
	return nil
}
