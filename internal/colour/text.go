package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexAlphaPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}$`)
	hexPattern      = regexp.MustCompile(`(?i)^[0-9a-f]{6}$`)
)

// ParseText parses a hex colour with an optional leading '#'.
//
// When allowAlpha is true the 8-digit AARRGGBB form is tried first. The
// 6-digit RRGGBB form takes its alpha from defaultAlpha, or 255 when nil.
// Text matching neither form returns false; this is routine during live
// text entry and is not treated as an error.
func ParseText(text string, allowAlpha bool, defaultAlpha *uint8) (RGBA, bool) {
	text = strings.TrimPrefix(text, "#")

	if allowAlpha && hexAlphaPattern.MatchString(text) {
		v, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return RGBA{}, false
		}
		return RGBA{
			A: uint8(v >> 24),
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, true
	}

	if hexPattern.MatchString(text) {
		v, err := strconv.ParseUint(text, 16, 32)
		if err != nil {
			return RGBA{}, false
		}
		c := RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		if defaultAlpha != nil {
			c.A = *defaultAlpha
		}
		return c, true
	}

	return RGBA{}, false
}

// FormatText formats a colour as lowercase AARRGGBB without a '#'.
// The result always round-trips through ParseText(s, true, nil).
func FormatText(c RGBA) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}
