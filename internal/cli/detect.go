package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/detection"
)

// NewDetectCommand creates the detect command.
func NewDetectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <image>",
		Short: "Detect the row boundaries of a sheet",
		Long: `Detect row boundaries on a scanned sheet and print the detection record as JSON.

Example:
  postcard-grid detect scans/faces-01.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := detection.New(opts.Config.DetectionOptions(), opts.Logger)
			res := d.DetectFile(args[0])
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if res.Error != nil {
				return errors.New(*res.Error)
			}
			return nil
		},
	}
}
