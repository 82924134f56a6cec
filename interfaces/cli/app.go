// Package cli provides the command-line interface for chartkit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chartkit/application"
	"github.com/felixgeelhaar/chartkit/infrastructure/config"
	"github.com/felixgeelhaar/chartkit/infrastructure/logging"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        config.Config
	engine     *application.Engine
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    config.Default(),
	}

	app.root = &cobra.Command{
		Use:   "chartkit",
		Short: "Analytics chart rendering for conversational applications",
		Long: `chartkit renders declarative chart specifications to SVG and splits
conversational text into prose and embedded chart blocks.

Specifications are JSON documents carrying a "type" discriminator (line,
bar, scatter, heatmap, distribution, comparison). Malformed blocks
degrade to visible placeholders instead of failing the whole message.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to configuration file")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRenderCmd(),
		app.newExtractCmd(),
		app.newValidateCmd(),
		app.newMCPCmd(),
	)

	return app
}

// setup loads configuration and builds the engine.
func (a *App) setup() error {
	if a.configPath != "" {
		cfg, err := config.NewLoader().LoadFile(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = *cfg
	}

	logging.Init(logging.Config{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
	})

	a.engine = application.NewEngine(
		application.WithDefaultWidth(float64(a.cfg.Render.Width)),
	)
	return nil
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "chartkit version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}

// readInput returns the named file's contents, or stdin for "-" or "".
func (a *App) readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
