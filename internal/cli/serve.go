package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server over stdio",
		Long: `Serve grid_detect, grid_crop, grid_combine, grid_preview and image_dimensions
as MCP tools. Requests are read from stdin one per line, responses are written to
stdout and logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}
}

func runServe(opts *RootOptions, cmd *cobra.Command) error {
	srv := server.New(opts.Config, opts.Logger)
	srv.Version = opts.Build.Version
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
