package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/ui/editor"
	"github.com/flowtasks/flowtext/internal/ui/pretty"
	"github.com/flowtasks/flowtext/pkg/attach"
	"github.com/flowtasks/flowtext/pkg/fsutil"
	"github.com/flowtasks/flowtext/pkg/tags"
)

type editFlags struct {
	inbox string
}

func newEditCommand() *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a description interactively",
		Long: `Open the interactive description editor.

The editor shows a live styled preview, offers hashtag autocomplete from
the configured tag catalog, and attaches images: ctrl+p inserts the newest
file from the inbox directory as an image reference. ctrl+s saves the
buffer back to the file.

Examples:
  flowtext edit notes.txt
  flowtext edit notes.txt --inbox ~/Screenshots`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.inbox, "inbox", "", "directory scanned for images on ctrl+p")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string, flags *editFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := ""
	initial := ""
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		initial = string(data)
	}

	var source tags.Source
	if cfg.TagsFile != "" {
		catalog, err := tags.LoadFile(cfg.TagsFile)
		if err != nil {
			return err
		}
		source = catalog
	} else {
		// No catalog configured: autocomplete stays silent.
		empty, _ := tags.NewCatalog(nil)
		source = empty
	}

	var uploader attach.Uploader
	if flags.inbox != "" {
		store, err := attach.NewDirStore(cfg.AttachmentsDir)
		if err != nil {
			return err
		}
		uploader = store
	}

	var onSave func(string) error
	if path != "" {
		target := path
		onSave = func(text string) error {
			return fsutil.WriteAtomic(target, []byte(text), 0)
		}
	}

	model := editor.New(editor.Options{
		InitialText: initial,
		Source:      source,
		Uploader:    uploader,
		InboxDir:    flags.inbox,
		Styles:      pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), os.Stdout)),
		OnSave:      onSave,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
