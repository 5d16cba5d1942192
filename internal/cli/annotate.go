package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/flowtasks/flowtext/internal/logging"
	"github.com/flowtasks/flowtext/internal/ui/pretty"
	"github.com/flowtasks/flowtext/pkg/render"
)

type annotateFlags struct {
	watch bool
}

func newAnnotateCommand() *cobra.Command {
	flags := &annotateFlags{}

	cmd := &cobra.Command{
		Use:   "annotate [file]",
		Short: "Render a description with inline styling",
		Long: `Render description text as styled terminal output.

Reads from the given file, or from stdin when no file (or "-") is given.
Markers stay visible: the output contains every character of the input.

Examples:
  flowtext annotate notes.txt          # Render a file
  echo '**do** #home/errands' | flowtext annotate
  flowtext annotate --watch notes.txt  # Re-render on every change`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when the file changes")

	return cmd
}

func runAnnotate(cmd *cobra.Command, args []string, flags *annotateFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), os.Stdout))

	if flags.watch {
		if path == "" || path == "-" {
			return fmt.Errorf("--watch requires a file argument")
		}
		return watchAndAnnotate(cmd.Context(), path, styles)
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}
	return annotateOnce(text, styles)
}

func annotateOnce(text string, styles *pretty.Styles) error {
	segments := render.Annotate(text)
	logging.Default().Debug("annotated",
		logging.FieldBytes, len(text),
		logging.FieldSegments, len(segments),
	)
	fmt.Println(styles.FormatSegments(segments))
	return nil
}

// watchAndAnnotate re-renders path on every write until interrupted.
// The watch is on the directory: editors that replace the file on save
// (rename over it) would otherwise drop the watch.
func watchAndAnnotate(ctx context.Context, path string, styles *pretty.Styles) error {
	logger := logging.Default()

	text, err := readInput(path)
	if err != nil {
		return err
	}
	if err := annotateOnce(text, styles); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	logger.Info("watching", logging.FieldPath, path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			text, err := readInput(path)
			if err != nil {
				logger.Warn("re-read failed", logging.FieldError, err)
				continue
			}
			if err := annotateOnce(text, styles); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)
		}
	}
}
