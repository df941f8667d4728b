package colour

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid 24-bit ANSI block of the colour, width cells wide.
// Terminals have no alpha, so only the RGB channels are shown.
func Preview(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a swatch with text centred over it.
// Black or white text is picked, whichever contrasts more with the colour.
func PreviewWithText(c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := White
	if ContrastRatio(c, Black) > ContrastRatio(c, White) {
		fg = Black
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg(c) + fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix) + display + ansiReset
}

// FormatWithPreview formats a colour as a swatch followed by label.
func FormatWithPreview(c RGBA, label string, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), label)
}

// SupportsANSIColours reports whether swatches should be written to w.
// NO_COLOR and TERM=dumb always disable them. Files that are not terminals
// (pipes, redirects) also disable them; other writers are assumed capable.
func SupportsANSIColours(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return true
}

func bg(c RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}
