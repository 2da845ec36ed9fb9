package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/compose"
)

// CombineOptions holds flags for the combine command.
type CombineOptions struct {
	*RootOptions
	Output string
	Rows   int
	Cols   int
}

// NewCombineCommand creates the combine command.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CombineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "combine <face-dir> <verso-dir>",
		Short: "Pair face and verso cells into composites",
		Long: `Pair every face cell with the verso cell of the same name and write
combined_row{r}_col{c}.jpg composites plus one lot_column_{n}.jpg per column.

--rows and --cols are informational; the grid is derived from the face cells.

Example:
  postcard-grid combine cells/face cells/verso --out lots/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := compose.New(opts.Config.Output.JPEGQuality, opts.Logger)
			return writeJSON(cmd.OutOrStdout(), c.Combine(args[0], args[1], opts.Output, opts.Rows, opts.Cols))
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output directory (required)")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "expected row count")
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "expected column count")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
