package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/detection"
	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// PreviewOptions holds flags for the preview command.
type PreviewOptions struct {
	*RootOptions
	H      []string
	V      []string
	Output string
	Color  string
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PreviewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Draw grid boundaries over a sheet",
		Long: `Draw row and column boundaries over a sheet and write preview.jpg.

Without --h and --v the detected boundaries are drawn.

Example:
  postcard-grid preview sheet.jpg --out check/
  postcard-grid preview sheet.jpg --h 0,1200,2400 --out check/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.H, "h", nil, "row boundaries in pixels")
	cmd.Flags().StringSliceVar(&opts.V, "v", nil, "column boundaries in pixels")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output directory (required)")
	cmd.Flags().StringVar(&opts.Color, "color", "#FF0000", "line color (#RRGGBB or #RRGGBBAA)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runPreview(opts *PreviewOptions, cmd *cobra.Command, path string) error {
	lineColor, err := imaging.ParseHexColor(opts.Color)
	if err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}
	h, err := parseBoundaryFlag("h", opts.H)
	if err != nil {
		return err
	}
	v, err := parseBoundaryFlag("v", opts.V)
	if err != nil {
		return err
	}

	if len(h) == 0 && len(v) == 0 {
		res := detection.New(opts.Config.DetectionOptions(), opts.Logger).DetectFile(path)
		if res.Error != nil {
			return errors.New(*res.Error)
		}
		h, v = res.HBoundaries, res.VBoundaries
	}

	res := imaging.WritePreview(path, h, v, opts.Output, lineColor, opts.Config.Output.JPEGQuality, opts.Logger)
	if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if res.Error != nil {
		return errors.New(*res.Error)
	}
	return nil
}
