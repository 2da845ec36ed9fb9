package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// CropOptions holds flags for the crop command.
type CropOptions struct {
	*RootOptions
	H      []string
	V      []string
	Output string
}

// NewCropCommand creates the crop command.
func NewCropCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CropOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "crop <image>",
		Short: "Crop a sheet into grid cells",
		Long: `Crop a sheet along explicit boundaries and write one JPEG per cell.

Boundaries must include the image edges. Fewer than two boundaries on either
axis produce no cells.

Example:
  postcard-grid crop sheet.jpg --h 0,1200,2400 --v 0,1800 --out cells/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseBoundaryFlag("h", opts.H)
			if err != nil {
				return err
			}
			v, err := parseBoundaryFlag("v", opts.V)
			if err != nil {
				return err
			}
			c := imaging.NewCropper(opts.Config.Output.JPEGQuality, opts.Logger)
			return writeJSON(cmd.OutOrStdout(), c.CropFile(args[0], h, v, opts.Output))
		},
	}

	cmd.Flags().StringSliceVar(&opts.H, "h", nil, "row boundaries in pixels")
	cmd.Flags().StringSliceVar(&opts.V, "v", nil, "column boundaries in pixels")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output directory (required)")
	_ = cmd.MarkFlagRequired("h")
	_ = cmd.MarkFlagRequired("v")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
