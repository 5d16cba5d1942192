package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/logging"
	"github.com/flowtasks/flowtext/internal/ui/pretty"
	"github.com/flowtasks/flowtext/pkg/tags"
)

func newTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [prefix]",
		Short: "Query the tag catalog",
		Long: `List tags from the configured catalog, optionally filtered by prefix.

The catalog file is set by tags_file in .flowtext.yaml. Matching is the
same case-insensitive prefix match hashtag autocomplete uses.

Examples:
  flowtext tags            # List every tag
  flowtext tags work       # Tags starting with "work"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTags,
	}

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.TagsFile == "" {
		return fmt.Errorf("no tags_file configured; set tags_file in %s", ".flowtext.yaml")
	}

	catalog, err := tags.LoadFile(cfg.TagsFile)
	if err != nil {
		return err
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	found, err := catalog.Query(cmd.Context(), prefix)
	if err != nil {
		return fmt.Errorf("query catalog: %w", err)
	}

	logging.Default().Debug("queried catalog",
		logging.FieldQuery, prefix,
		logging.FieldTags, len(found),
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), os.Stdout))
	for _, tag := range found {
		line := "#" + tag.FullPath
		if tag.Depth > 0 {
			line = "  " + line
		}
		fmt.Println(styles.Hashtag.Render(line))
	}

	return nil
}
