package colour

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColour is returned by Resolve when text is neither hex nor a known name.
var ErrUnknownColour = errors.New("unknown colour")

// Resolve turns user supplied text into a colour.
// Hex forms accepted by ParseText (with alpha allowed) are tried first, then
// SVG 1.1 colour names such as "cornflowerblue". defaultAlpha applies to the
// 6-digit form and to named colours.
func Resolve(text string, defaultAlpha *uint8) (RGBA, error) {
	trimmed := strings.TrimSpace(text)

	if c, ok := ParseText(trimmed, true, defaultAlpha); ok {
		return c, nil
	}

	if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		c := FromColor(named)
		if defaultAlpha != nil {
			c.A = *defaultAlpha
		}
		return c, nil
	}

	return RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, text)
}

// Names returns the sorted list of colour names Resolve understands.
func Names() []string {
	return colornames.Names
}
