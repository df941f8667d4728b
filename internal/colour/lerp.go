package colour

// Lerp linearly interpolates every channel, alpha included, between a and b.
// t=0 returns a and t=1 returns b. Values of t outside [0, 1] extrapolate;
// results are rounded to the nearest integer and clamped to [0, 255].
func Lerp(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: LerpChannel(a.R, b.R, t),
		G: LerpChannel(a.G, b.G, t),
		B: LerpChannel(a.B, b.B, t),
		A: LerpChannel(a.A, b.A, t),
	}
}

// LerpChannel interpolates a single 8-bit channel with rounding.
func LerpChannel(a, b uint8, t float64) uint8 {
	return round8(float64(a) + t*(float64(b)-float64(a)))
}
