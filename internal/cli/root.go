// Package cli provides the command-line interface for favico.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/favico/internal/version"
)

// NewRootCmd builds the favico command tree. Running the root command with no
// subcommand performs an export.
func NewRootCmd() *cobra.Command {
	opts := &exportOptions{}

	rootCmd := &cobra.Command{
		Use:   "favico [source] [output]",
		Short: "Convert an image into a multi-resolution favicon",
		Long: `favico loads a single image, resamples it to a list of square sizes and
writes every size into one Windows ICO file.

With no arguments it reads house.png and writes favicon.ico in the current
directory, embedding 16, 32, 48, 64, 128 and 256 pixel images.

Every setting can also be provided through the environment:
  FAVICO_SOURCE, FAVICO_OUTPUT, FAVICO_SIZES, FAVICO_FILTER, FAVICO_FIT, FAVICO_FORMAT

Flags and arguments take precedence over the environment.`,
		Version:      version.Short(),
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	registerExportFlags(rootCmd.Flags(), opts)

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger returns a logger writing to the command's error stream at the
// level selected by --verbose and --quiet.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Trace
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "favico",
		Output: cmd.ErrOrStderr(),
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
