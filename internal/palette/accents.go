package palette

import "github.com/jmylchreest/hueforge/internal/colour"

// Saturation and value shift, in percent, between an accent and its dark
// and bright variants.
const shadeShift = 50

// accentPlan describes how an accent strategy spreads hues around the wheel.
type accentPlan struct {
	chunks      int
	hueVariance int
	analogous   bool
}

func accentPlanFor(s Strategy) (accentPlan, bool) {
	switch s {
	case Similar3:
		return accentPlan{chunks: 3, hueVariance: 60, analogous: true}, true
	case Similar4:
		return accentPlan{chunks: 4, hueVariance: 40, analogous: true}, true
	case Complement:
		return accentPlan{chunks: 2, hueVariance: 180}, true
	case Triadic:
		return accentPlan{chunks: 3, hueVariance: 120}, true
	case Square:
		return accentPlan{chunks: 4, hueVariance: 90}, true
	case SplitComplement:
		return accentPlan{chunks: 4, hueVariance: 40}, true
	default:
		return accentPlan{}, false
	}
}

// offset returns the raw hue offset in degrees of accent i, before wrapping.
func (p accentPlan) offset(s Strategy, i int) int {
	if p.analogous {
		// Offsets straddle the primary hue: {-60, 0, 60} or {-80, -40, 40, 80}.
		// An even accent count skips 0 so the primary hue is not repeated.
		hueRange := (p.chunks / 2) * p.hueVariance
		hue := -hueRange + p.hueVariance*i
		if p.chunks%2 == 0 && hue >= 0 {
			hue += p.hueVariance
		}
		return hue
	}

	if s == SplitComplement {
		hue := p.hueVariance * i
		if i >= 2 {
			hue += 100
		}
		return hue
	}

	return p.chunks*p.hueVariance + p.hueVariance*i
}

// AccentOffsets returns the raw hue offsets, in degrees, that an accent
// strategy applies to the primary hue. Gradient strategies return nil.
func AccentOffsets(s Strategy) []int {
	plan, ok := accentPlanFor(s)
	if !ok {
		return nil
	}

	offsets := make([]int, plan.chunks)
	for i := range offsets {
		offsets[i] = plan.offset(s, i)
	}
	return offsets
}

// ChunkSizes splits amount colours across chunks groups. Every group gets
// amount/chunks colours and the last one also takes the remainder, so the
// sizes always sum to amount. Sizes are zero, never negative, when amount
// is smaller than chunks.
func ChunkSizes(amount, chunks int) []int {
	if chunks <= 0 {
		return nil
	}
	if amount < 0 {
		amount = 0
	}

	sizes := make([]int, chunks)
	chunk := amount / chunks
	for i := range sizes {
		sizes[i] = chunk
	}
	sizes[chunks-1] += amount % chunks
	return sizes
}

// Accent is one hue group of an accent palette: a lightness ramp running
// from Dark through Base to Bright.
type Accent struct {
	Offset int         `json:"offset"`
	Hue    float64     `json:"hue"`
	Size   int         `json:"size"`
	Dark   colour.RGBA `json:"dark"`
	Base   colour.RGBA `json:"base"`
	Bright colour.RGBA `json:"bright"`
}

// PlanAccents returns the hue groups an accent strategy would produce for
// amount colours. The dark variant adds saturation and removes value, the
// bright variant does the opposite, both clamped to [0, 100]. All three
// carry the primary's alpha.
func PlanAccents(s Strategy, amount int, primary colour.RGBA) []Accent {
	plan, ok := accentPlanFor(s)
	if !ok {
		return nil
	}

	base := colour.RGBToHSV(primary)
	sizes := ChunkSizes(amount, plan.chunks)
	accents := make([]Accent, plan.chunks)

	for i := range accents {
		offset := plan.offset(s, i)
		hue := colour.NormaliseHue(base.H + float64(offset))

		accents[i] = Accent{
			Offset: offset,
			Hue:    hue,
			Size:   sizes[i],
			Dark: colour.HSVToRGB(colour.HSV{
				H: hue,
				S: colour.ClampPercent(base.S + shadeShift),
				V: colour.ClampPercent(base.V - shadeShift),
			}, primary.A),
			Base: colour.HSVToRGB(colour.HSV{H: hue, S: base.S, V: base.V}, primary.A),
			Bright: colour.HSVToRGB(colour.HSV{
				H: hue,
				S: colour.ClampPercent(base.S - shadeShift),
				V: colour.ClampPercent(base.V + shadeShift),
			}, primary.A),
		}
	}

	return accents
}
