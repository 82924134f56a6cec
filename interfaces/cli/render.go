package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chartkit/infrastructure/logging"
)

// renderOptions holds options for the render command.
type renderOptions struct {
	width int
	out   string
	watch bool
}

// newRenderCmd creates the render command.
func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart specification to SVG",
		Long: `Render a JSON chart specification to a standalone SVG document.

Reads the specification from the named file, or from stdin when the
file is omitted or "-". Malformed specifications render a visible
placeholder document and exit successfully, mirroring how embedded
charts degrade inside a conversation.

Examples:
  # Render a file to stdout
  chartkit render spec.json

  # Render from stdin into a file
  cat spec.json | chartkit render --out chart.svg

  # Re-render whenever the file changes
  chartkit render spec.json --out chart.svg --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			if opts.watch {
				if path == "" || path == "-" {
					return fmt.Errorf("--watch requires a file argument")
				}
				return a.renderWatch(cmd.Context(), path, opts)
			}

			return a.renderOnce(cmd, path, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Pixel width (config default when omitted)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (stdout when omitted)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-render when the input file changes")

	return cmd
}

// renderOnce renders the input a single time.
func (a *App) renderOnce(cmd *cobra.Command, path string, opts *renderOptions) error {
	raw, err := a.readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read specification: %w", err)
	}
	return a.renderToOutput(cmd.Context(), raw, opts)
}

// renderToOutput renders raw bytes and writes the SVG document.
func (a *App) renderToOutput(ctx context.Context, raw []byte, opts *renderOptions) error {
	doc, err := a.engine.RenderSVG(ctx, raw, float64(opts.width))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if opts.out == "" {
		_, err = fmt.Fprintln(a.stdout, doc)
		return err
	}
	return os.WriteFile(opts.out, []byte(doc), 0o644)
}

// renderWatch re-renders the file on every write until the context is
// canceled.
func (a *App) renderWatch(ctx context.Context, path string, opts *renderOptions) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file atomically
	// still trigger events.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	render := func() {
		raw, err := os.ReadFile(absPath)
		if err != nil {
			logging.Get().Warn().Err(err).Msg("read failed, keeping last output")
			return
		}
		if err := a.renderToOutput(ctx, raw, opts); err != nil {
			logging.Get().Warn().Err(err).Msg("render failed, keeping last output")
		}
	}

	render()
	logging.Get().Info().Str("path", absPath).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get().Warn().Err(err).Msg("watch error")
		}
	}
}
