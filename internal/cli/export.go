package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/favico/internal/favicon"
	"github.com/jmylchreest/favico/internal/ico"
	"github.com/jmylchreest/favico/internal/image"
)

// exportOptions holds flag values for the export command.
type exportOptions struct {
	source string
	output string
	sizes  []string
	filter string
	fit    string
	format string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [source] [output]",
		Short: "Write a multi-resolution icon file",
		Long: `Resample a source image to every requested size and write the results into
one ICO file, replacing any existing file.

Examples:
  # house.png -> favicon.ico with the default sizes
  favico export

  # Explicit paths
  favico export logo.png site/favicon.ico

  # Only small sizes, stored as bitmaps for legacy readers
  favico export --sizes 16,32,48 --format bmp logo.png

  # Keep the aspect ratio of a non-square logo
  favico export --fit contain banner.png`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	registerExportFlags(cmd.Flags(), opts)
	return cmd
}

func registerExportFlags(flags *pflag.FlagSet, opts *exportOptions) {
	flags.StringVarP(&opts.source, "source", "s", favicon.DefaultSource, "source image (PNG, JPEG, GIF, WebP, BMP, TIFF)")
	flags.StringVarP(&opts.output, "output", "o", favicon.DefaultDestination, "icon file to write")
	flags.StringSliceVar(&opts.sizes, "sizes", favicon.DefaultSizes.Strings(), "comma separated sizes, as N or NxN (max 256)")
	flags.StringVar(&opts.filter, "filter", string(image.FilterLanczos), fmt.Sprintf("resampling filter %v", image.Filters()))
	flags.StringVar(&opts.fit, "fit", string(image.FitStretch), "how to fit non-square sources (stretch, contain)")
	flags.StringVar(&opts.format, "format", string(ico.FormatPNG), "entry encoding (png, bmp)")
}

// resolveConfig layers environment, flags and positional arguments, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string, opts *exportOptions) (favicon.Config, error) {
	cfg, err := favicon.LoadConfigFromEnv()
	if err != nil {
		return favicon.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("output") {
		cfg.Destination = opts.output
	}
	if flags.Changed("sizes") {
		sizes, err := favicon.ParseSizes(opts.sizes)
		if err != nil {
			return favicon.Config{}, err
		}
		cfg.Sizes = sizes
	}
	if flags.Changed("filter") {
		cfg.Resample.Filter = image.Filter(opts.filter)
	}
	if flags.Changed("fit") {
		cfg.Resample.Fit = image.Fit(opts.fit)
	}
	if flags.Changed("format") {
		cfg.Format = ico.Format(opts.format)
	}

	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if len(args) > 1 {
		cfg.Destination = args[1]
	}

	return cfg, nil
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Debug("exporting", "source", cfg.Source, "destination", cfg.Destination, "sizes", cfg.Sizes.Strings())

	exporter := favicon.New(
		favicon.WithLogger(logger),
		favicon.WithNotice(cmd.OutOrStdout()),
	)
	if _, err := exporter.Export(cfg); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	return nil
}
