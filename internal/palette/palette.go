package palette

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// Palette is an ordered sequence of generated colours.
// Order is picker order: earlier entries are shown first.
type Palette struct {
	Strategy Strategy
	Colours  []colour.RGBA
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(strategy Strategy, colours []colour.RGBA) *Palette {
	if colours == nil {
		colours = []colour.RGBA{}
	}
	return &Palette{
		Strategy: strategy,
		Colours:  colours,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (colour.RGBA, error) {
	if index < 0 || index >= len(p.Colours) {
		return colour.RGBA{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over the palette's index and colour pairs.
func (p *Palette) All() iter.Seq2[int, colour.RGBA] {
	return func(yield func(int, colour.RGBA) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToHex returns the colours as "#rrggbb" strings. Alpha is dropped.
func (p *Palette) ToHex() []string {
	out := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = c.Hex()
	}
	return out
}

// ToText returns the colours in the lossless AARRGGBB text form.
func (p *Palette) ToText() []string {
	out := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = colour.FormatText(c)
	}
	return out
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex  string      `json:"hex"`
	Text string      `json:"text"`
	RGBA colour.RGBA `json:"rgba"`
	HSV  colour.HSV  `json:"hsv"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Strategy Strategy     `json:"strategy"`
	Count    int          `json:"count"`
	Colours  []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex:  c.Hex(),
			Text: colour.FormatText(c),
			RGBA: c,
			HSV:  colour.RGBToHSV(c),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Strategy: p.Strategy,
		Count:    len(p.Colours),
		Colours:  colours,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette (%s) with %d colours:\n", p.Strategy, len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %3d: %s (%s)\n", i+1, colour.FormatText(c), c.String())
	}
	return b.String()
}
