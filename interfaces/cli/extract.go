package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chartkit/infrastructure/extract"
)

// extractOptions holds options for the extract command.
type extractOptions struct {
	chartsOnly bool
}

// newExtractCmd creates the extract command.
func (a *App) newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Split conversational text into prose and chart segments",
		Long: `Split free-form text into ordered prose and chart-specification
segments and print them as JSON.

Reads from the named file, or from stdin when the file is omitted or
"-". Concatenating the raw text of all segments reproduces the input
byte for byte.

Examples:
  # Segment a transcript
  chartkit extract conversation.txt

  # Only the embedded chart specifications
  chartkit extract conversation.txt --charts-only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			raw, err := a.readInput(cmd, path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			segments := extract.Split(string(raw))
			if opts.chartsOnly {
				segments = extract.Charts(segments)
			}

			type segment struct {
				Kind string `json:"kind"`
				Text string `json:"text"`
			}
			out := make([]segment, 0, len(segments))
			for _, s := range segments {
				out = append(out, segment{Kind: string(s.Kind), Text: s.Text})
			}

			encoder := json.NewEncoder(a.stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&opts.chartsOnly, "charts-only", false, "Print only chart segments")

	return cmd
}
