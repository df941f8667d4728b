package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
)

var errNotAColour = errors.New("not a colour")

// parseOptions holds the parse command flags.
type parseOptions struct {
	global       *globalOptions
	allowAlpha   bool
	defaultAlpha int
	preview      bool
}

func newParseCmd(global *globalOptions) *cobra.Command {
	opts := &parseOptions{global: global}

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse hex colour text",
		Long: `Parse a hex colour and print it in normalised AARRGGBB form.

The text may start with '#'. With --alpha (the default) an 8 digit
AARRGGBB value is accepted; otherwise, or when the text has 6 digits,
RRGGBB is read and alpha comes from --default-alpha (255 when unset).

Examples:
  hueforge parse '#ff8800'
  hueforge parse 80ff8800
  hueforge parse --alpha=false --default-alpha 128 ff8800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.allowAlpha, "alpha", true, "accept the 8 digit AARRGGBB form")
	cmd.Flags().IntVar(&opts.defaultAlpha, "default-alpha", -1, "alpha for 6 digit colours, 0-255 (default 255)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a colour swatch in the terminal")

	return cmd
}

func runParse(cmd *cobra.Command, opts *parseOptions, text string) error {
	var defaultAlpha *uint8
	if opts.defaultAlpha >= 0 {
		if opts.defaultAlpha > 255 {
			return fmt.Errorf("default alpha out of range: %d (valid: 0-255)", opts.defaultAlpha)
		}
		a := uint8(opts.defaultAlpha)
		defaultAlpha = &a
	}

	c, ok := colour.ParseText(text, opts.allowAlpha, defaultAlpha)
	if !ok {
		return fmt.Errorf("%w: %q", errNotAColour, text)
	}

	logger := newLogger(cmd, opts.global)
	logger.Debug("parsed colour", "rgba", c.String(), "hsv", colour.RGBToHSV(c).String())

	label := colour.FormatText(c)
	if opts.preview && colour.SupportsANSIColours(cmd.OutOrStdout()) {
		label = colour.FormatWithPreview(c, label, previewWidth)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}
