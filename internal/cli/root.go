// Package cli provides the Cobra command structure for flowtext.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root flowtext command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "flowtext",
		Short: "Live markdown annotation for Flow Tasks descriptions",
		Long: `flowtext is the annotation engine behind Flow Tasks description editing.

It scans description text for inline markup (bold, italic, hashtags, image
references), renders it as styled segments without hiding a single source
character, and drives hashtag autocomplete against a tag catalog. The same
engine powers the terminal preview, the interactive editor, and HTML export.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newAnnotateCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newEditCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
