package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/logging"
	"github.com/flowtasks/flowtext/pkg/export"
	"github.com/flowtasks/flowtext/pkg/fsutil"
)

type exportFlags struct {
	output string
	images []string
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a description as HTML",
		Long: `Convert description text to HTML for sharing.

Resolvable [imgN] references become images and hashtags become links when
tag_base_url is configured. Unresolvable references stay as literal text.

Image locations are supplied as index=location pairs:

  flowtext export notes.txt --image 0=https://cdn.example.com/a.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().StringArrayVar(&flags.images, "image", nil, "image location as index=location (repeatable)")

	return cmd
}

// flagResolver resolves image indices from --image flags.
type flagResolver map[int]string

func (r flagResolver) Resolve(index int) (string, bool) {
	location, ok := r[index]
	return location, ok
}

func parseImageFlags(pairs []string) (flagResolver, error) {
	resolver := flagResolver{}
	for _, pair := range pairs {
		index, location, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid --image %q: want index=location", pair)
		}
		n, err := strconv.Atoi(index)
		if err != nil {
			return nil, fmt.Errorf("invalid --image index %q: %w", index, err)
		}
		resolver[n] = location
	}
	return resolver, nil
}

func runExport(cmd *cobra.Command, args []string, flags *exportFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	text, err := readInput(path)
	if err != nil {
		return err
	}

	resolver, err := parseImageFlags(flags.images)
	if err != nil {
		return err
	}

	html, err := export.HTML(text, export.Options{
		Resolver:   resolver,
		TagBaseURL: cfg.TagBaseURL,
	})
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Print(html)
		return nil
	}

	if err := fsutil.WriteAtomic(flags.output, []byte(html), 0); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	logging.Default().Info("exported", logging.FieldOutput, flags.output)
	return nil
}
