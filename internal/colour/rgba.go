// Package colour provides colour models, lossless RGB/HSV conversion and
// colour text formats used by the palette generator.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is an 8-bit per channel colour with straight (non-premultiplied) alpha.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	// Black is opaque black.
	Black = RGBA{A: 255}

	// White is opaque white.
	White = RGBA{R: 255, G: 255, B: 255, A: 255}
)

// WithAlpha returns a copy of the colour with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Hex returns the colour channels as a hex string (e.g., "#1a2b3c").
// Alpha is not included; use FormatText for a lossless form.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour in the format "rgba(r, g, b, a)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Color converts the colour to the standard library representation.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to RGBA, un-premultiplying alpha.
func FromColor(c color.Color) RGBA {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// round8 rounds to the nearest integer and clamps into a channel.
func round8(x float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(x))))
}
