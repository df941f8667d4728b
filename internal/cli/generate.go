package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
)

// Environment variables that seed generate flags the user did not set.
const (
	envPrimary   = "HUEFORGE_PRIMARY"
	envSecondary = "HUEFORGE_SECONDARY"
	envStrategy  = "HUEFORGE_STRATEGY"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	global    *globalOptions
	strategy  palette.Strategy
	count     int
	primary   colour.RGBA
	secondary colour.RGBA
	format    string
	output    string
	preview   bool
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{global: global}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour palette",
		Long: `Generate an ordered colour palette from a primary and secondary colour.

Colours may be given as RRGGBB, AARRGGBB (with or without a leading '#')
or as an SVG colour name. Unset flags fall back to HUEFORGE_PRIMARY,
HUEFORGE_SECONDARY and HUEFORGE_STRATEGY.

Strategies:
  primary-to-secondary  gradient from primary towards secondary
  light-to-dark         black to primary, then primary to white
  similar-3, similar-4  lightness ramps around analogous hues
  complement, triadic, square, split-complement
                        lightness ramps around harmonic hues

Examples:
  # 16 colour gradient from navy to gold
  hueforge generate --primary navy --secondary gold

  # Triadic palette of 24 colours as JSON
  hueforge generate -s triadic -n 24 --primary '#3366cc' -f json

  # Lightness ramp with terminal swatches
  hueforge generate -s light-to-dark --primary tomato --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.VarP(newStrategyValue(palette.PrimaryToSecondary, &opts.strategy), "strategy", "s", "palette strategy (see 'hueforge strategies')")
	flags.IntVarP(&opts.count, "count", "n", 16, fmt.Sprintf("number of colours to generate (0-%d)", palette.MaxSize))
	flags.Var(newColourValue(colour.Black, &opts.primary), "primary", "primary colour")
	flags.Var(newColourValue(colour.White, &opts.secondary), "secondary", "secondary colour (primary-to-secondary only)")
	flags.StringVarP(&opts.format, "format", "f", "hex", "output format (hex, text, rgb, json)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&opts.preview, "preview", false, "show colour swatches in the terminal")

	return cmd
}

// applyEnv fills flags the user did not set from the environment.
func (o *generateOptions) applyEnv(cmd *cobra.Command) error {
	colourEnv := []struct {
		flag string
		env  string
		dst  *colour.RGBA
	}{
		{flag: "primary", env: envPrimary, dst: &o.primary},
		{flag: "secondary", env: envSecondary, dst: &o.secondary},
	}

	for _, e := range colourEnv {
		value := os.Getenv(e.env)
		if value == "" || cmd.Flags().Changed(e.flag) {
			continue
		}
		c, err := colour.Resolve(value, nil)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.env, err)
		}
		*e.dst = c
	}

	if value := os.Getenv(envStrategy); value != "" && !cmd.Flags().Changed("strategy") {
		s, err := palette.ParseStrategy(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envStrategy, err)
		}
		o.strategy = s
	}

	return nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if err := opts.applyEnv(cmd); err != nil {
		return err
	}

	if opts.count < 0 {
		return fmt.Errorf("colour count must not be negative, got %d", opts.count)
	}
	if opts.count > palette.MaxSize {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", opts.count, palette.MaxSize)
	}

	logger := newLogger(cmd, opts.global)
	logger.Debug("generating palette",
		"strategy", opts.strategy.String(),
		"count", opts.count,
		"primary", colour.FormatText(opts.primary),
		"secondary", colour.FormatText(opts.secondary))

	generator := palette.NewGenerator(palette.WithLogger(logger))
	p, err := generator.Generate(palette.Request{
		Strategy:  opts.strategy,
		Amount:    opts.count,
		Primary:   opts.primary,
		Secondary: opts.secondary,
	})
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	showPreview := opts.preview && opts.output == "" && colour.SupportsANSIColours(cmd.OutOrStdout())
	if opts.preview && !showPreview {
		logger.Debug("colour swatches disabled for this output")
	}

	output, err := formatPalette(p, opts.format, showPreview)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote palette", "path", opts.output, "colours", p.Len())
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
