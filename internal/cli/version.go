package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/detection"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "postcard-grid %s\n", opts.Build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", opts.Build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", opts.Build.GitCommit)
			fmt.Fprintf(out, "  Regions:    %s\n", detection.Backend)
			return nil
		},
	}
}
