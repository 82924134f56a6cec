package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chartkit/infrastructure/mcp"
)

// newMCPCmd creates the mcp command.
func (a *App) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve chartkit tools over the Model Context Protocol",
		Long: `Run an MCP server over stdio exposing render_chart,
extract_blocks, and validate_spec, so conversational AI hosts can
render and validate chart specifications as tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcp.NewChartServer(mcp.ChartServerConfig{
				Name:         "chartkit",
				Version:      Version,
				Description:  "Analytics chart rendering for conversational applications",
				Engine:       a.engine,
				DefaultWidth: float64(a.cfg.Render.Width),
			})
			return srv.ServeStdio(cmd.Context())
		},
	}
}
