// Package cli wires the grid operations and the tool server into a cobra
// command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/postcard-grid/internal/config"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RootOptions holds global flags and the state prepared for subcommands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	Build      BuildInfo

	// Config and Logger are set by the root command before any subcommand
	// runs.
	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the tool server.
func NewRootCommand(build BuildInfo) *cobra.Command {
	opts := &RootOptions{Build: build}

	cmd := &cobra.Command{
		Use:   "postcard-grid",
		Short: "Detect, crop and pair postcard grids on scanned sheets",
		Long: `postcard-grid splits scanned sheets of postcards into single cards.

It detects row boundaries on a sheet, crops the sheet into crop_row{r}_col{c}.jpg
cells and pairs face and verso cells into side-by-side composites and per-column
lots. With no subcommand it serves these operations as MCP tools over stdio.`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewDetectCommand(opts))
	cmd.AddCommand(NewCropCommand(opts))
	cmd.AddCommand(NewCombineCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// setup loads configuration and installs the slog handler on logOut.
// stdout is left to command output and the tool protocol.
func (o *RootOptions) setup(logOut io.Writer) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.SlogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})

	o.Config = cfg
	o.Logger = slog.New(handler)
	slog.SetDefault(o.Logger)
	return nil
}
