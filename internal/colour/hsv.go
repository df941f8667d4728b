package colour

import (
	"fmt"
	"math"
)

// HSV is a floating point hue/saturation/value colour.
// Hue is in degrees [0, 360); saturation and value are percentages [0, 100].
// Keeping the components as floats makes RGB -> HSV -> RGB lossless.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the colour in the format "hsv(h, s%, v%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.V)
}

// RGBToHSV converts an RGB colour to HSV using the hexagonal projection.
// Alpha is ignored.
func RGBToHSV(c RGBA) HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal * 100}
	if maxVal > 0 {
		hsv.S = delta / maxVal * 100
	}

	// Achromatic: hue is undefined, report 0.
	if delta == 0 {
		return hsv
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	hsv.H = NormaliseHue(h * 60)
	return hsv
}

// HSVToRGB converts an HSV colour back to RGB with the given alpha.
// Channels are rounded to the nearest integer once, at the end, so
// HSVToRGB(RGBToHSV(c), c.A) == c for every c.
func HSVToRGB(c HSV, alpha uint8) RGBA {
	h := NormaliseHue(c.H)
	s := ClampPercent(c.S) / 100
	v := ClampPercent(c.V) / 100

	if s == 0 {
		grey := round8(v * 255)
		return RGBA{R: grey, G: grey, B: grey, A: alpha}
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGBA{R: round8(r * 255), G: round8(g * 255), B: round8(b * 255), A: alpha}
}

// NormaliseHue wraps a hue in degrees into [0, 360).
// The remainder is taken first and then corrected once in each direction;
// the second correction catches -tiny + 360 rounding up to exactly 360.
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// ClampPercent clamps a saturation or value component into [0, 100].
func ClampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
