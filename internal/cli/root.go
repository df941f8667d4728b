// Package cli provides the command-line interface for hueforge.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/version"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the hueforge command tree. Each call returns an
// independent tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "hueforge",
		Short: "A procedural colour palette generator",
		Long: `hueforge generates ordered colour palettes for colour pickers from a
primary and secondary colour.

Palettes can be simple gradients or lightness ramps built around
analogous, complementary, triadic, square and split-complementary hues.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newStrategiesCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
