package colour

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want HSV
	}{
		{name: "red", c: RGBA{R: 255, A: 255}, want: HSV{H: 0, S: 100, V: 100}},
		{name: "yellow", c: RGBA{R: 255, G: 255, A: 255}, want: HSV{H: 60, S: 100, V: 100}},
		{name: "green", c: RGBA{G: 255, A: 255}, want: HSV{H: 120, S: 100, V: 100}},
		{name: "cyan", c: RGBA{G: 255, B: 255, A: 255}, want: HSV{H: 180, S: 100, V: 100}},
		{name: "blue", c: RGBA{B: 255, A: 255}, want: HSV{H: 240, S: 100, V: 100}},
		{name: "magenta", c: RGBA{R: 255, B: 255, A: 255}, want: HSV{H: 300, S: 100, V: 100}},
		{name: "black", c: Black, want: HSV{}},
		{name: "white", c: White, want: HSV{H: 0, S: 0, V: 100}},
		{name: "grey", c: RGBA{R: 51, G: 51, B: 51, A: 255}, want: HSV{H: 0, S: 0, V: 20}},
		{name: "half red", c: RGBA{R: 255, G: 128, B: 128, A: 0}, want: HSV{H: 0, S: 100 * 127.0 / 255.0, V: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.c)
			if !approxEqual(got.H, tt.want.H) || !approxEqual(got.S, tt.want.S) || !approxEqual(got.V, tt.want.V) {
				t.Errorf("RGBToHSV(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name  string
		hsv   HSV
		alpha uint8
		want  RGBA
	}{
		{name: "red", hsv: HSV{H: 0, S: 100, V: 100}, alpha: 255, want: RGBA{R: 255, A: 255}},
		{name: "full turn is red", hsv: HSV{H: 360, S: 100, V: 100}, alpha: 255, want: RGBA{R: 255, A: 255}},
		{name: "negative hue wraps", hsv: HSV{H: -120, S: 100, V: 100}, alpha: 255, want: RGBA{B: 255, A: 255}},
		{name: "half value rounds up", hsv: HSV{H: 240, S: 100, V: 50}, alpha: 255, want: RGBA{B: 128, A: 255}},
		{name: "saturation clamped", hsv: HSV{H: 120, S: 150, V: 100}, alpha: 10, want: RGBA{G: 255, A: 10}},
		{name: "value clamped", hsv: HSV{H: 0, S: 0, V: -20}, alpha: 255, want: Black},
		{name: "grey", hsv: HSV{H: 77, S: 0, V: 100}, alpha: 255, want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.hsv, tt.alpha); got != tt.want {
				t.Errorf("HSVToRGB(%v, %d) = %v, want %v", tt.hsv, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}

	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				c := RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(r ^ b)}
				if got := HSVToRGB(RGBToHSV(c), c.A); got != c {
					t.Fatalf("HSVToRGB(RGBToHSV(%v)) = %v", c, got)
				}
			}
		}
	}
}

func TestRGBToHSVMatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 5 {
				c := RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
				cf, ok := colorful.MakeColor(c.Color())
				if !ok {
					t.Fatalf("colorful.MakeColor(%v) failed", c)
				}
				h, s, v := cf.Hsv()

				got := RGBToHSV(c)
				if HueDistance(got.H, h) > epsilon || !approxEqual(got.S, s*100) || !approxEqual(got.V, v*100) {
					t.Errorf("RGBToHSV(%v) = %v, colorful gives (%f, %f, %f)", c, got, h, s*100, v*100)
				}
			}
		}
	}
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 359.5, want: 359.5},
		{in: 360, want: 0},
		{in: 600, want: 240},
		{in: 780, want: 60},
		{in: -60, want: 300},
		{in: -720, want: 0},
		{in: -1e-20, want: 0},
	}

	for _, tt := range tests {
		if got := NormaliseHue(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("NormaliseHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormaliseHueRange(t *testing.T) {
	for h := -720.0; h <= 720.0; h += 0.25 {
		got := NormaliseHue(h)
		if got < 0 || got >= 360 {
			t.Fatalf("NormaliseHue(%v) = %v, outside [0, 360)", h, got)
		}
		if d := math.Abs(math.Remainder(got-h, 360)); d > epsilon {
			t.Fatalf("NormaliseHue(%v) = %v, not congruent mod 360", h, got)
		}
	}
}
