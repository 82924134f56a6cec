package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a chart specification",
		Long: `Parse a JSON chart specification and report whether it is valid.

Reads from the named file, or from stdin when the file is omitted or
"-". Validation fails closed: unknown chart types, missing titles, and
malformed JSON are rejected.

Examples:
  # Validate a file
  chartkit validate spec.json

  # Validate from stdin
  cat spec.json | chartkit validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			raw, err := a.readInput(cmd, path)
			if err != nil {
				return fmt.Errorf("read specification: %w", err)
			}

			spec, err := a.engine.ValidateSpec(raw)
			if err != nil {
				return fmt.Errorf("invalid specification: %w", err)
			}

			fmt.Fprintf(a.stdout, "valid %s chart %q (id %s)\n",
				spec.SpecType(), spec.SpecTitle(), spec.SpecID())
			return nil
		},
	}
}
