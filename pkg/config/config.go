// Package config defines core configuration types for flowtext.
// These types are pure data structures; loading lives in loader.go.
package config

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for flowtext.
type Config struct {
	// LogLevel sets the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// Color controls colorized output.
	Color ColorMode `yaml:"color"`

	// TagsFile is the path to the YAML tag catalog.
	TagsFile string `yaml:"tags_file"`

	// AttachmentsDir is where pasted images are stored.
	AttachmentsDir string `yaml:"attachments_dir"`

	// TagBaseURL, when set, turns hashtags into links on export.
	TagBaseURL string `yaml:"tag_base_url"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		LogLevel:       "info",
		Color:          ColorAuto,
		AttachmentsDir: "attachments",
	}
}
