package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// envLogLevel overrides the level picked from --verbose and --quiet.
const envLogLevel = "HUEFORGE_LOG_LEVEL"

// newLogger returns a logger writing to the command's stderr.
// --verbose selects debug, --quiet selects error, otherwise info.
func newLogger(cmd *cobra.Command, opts *globalOptions) hclog.Logger {
	level := hclog.Info
	switch {
	case opts.quiet:
		level = hclog.Error
	case opts.verbose:
		level = hclog.Debug
	}

	if env := os.Getenv(envLogLevel); env != "" {
		if parsed := hclog.LevelFromString(env); parsed != hclog.NoLevel {
			level = parsed
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "hueforge",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
