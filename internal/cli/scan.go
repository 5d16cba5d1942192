package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/logging"
	"github.com/flowtasks/flowtext/pkg/scan"
)

type scanFlags struct {
	format string
}

// matchJSON is the wire shape of one match in JSON output.
type matchJSON struct {
	Kind    string `json:"kind"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
	Text    string `json:"text"`
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "List the inline patterns found in a description",
		Long: `Scan description text and list every pattern match with its offsets.

Reads from the given file, or from stdin when no file (or "-") is given.

Examples:
  flowtext scan notes.txt
  flowtext scan --format json notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runScan(_ *cobra.Command, args []string, flags *scanFlags) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}

	matches := scan.Scan(text)
	logging.Default().Debug("scanned",
		logging.FieldBytes, len(text),
		logging.FieldMatches, len(matches),
	)

	switch flags.format {
	case "json":
		out := make([]matchJSON, 0, len(matches))
		for _, m := range matches {
			out = append(out, matchJSON{
				Kind:    m.Kind.String(),
				Start:   m.Start,
				End:     m.End,
				Content: m.Content,
				Text:    m.Text(text),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "text":
		for _, m := range matches {
			fmt.Printf("%d:%d\t%s\t%s\n", m.Start, m.End, m.Kind, m.Text(text))
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q", flags.format)
	}
}
