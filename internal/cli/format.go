package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
)

// previewWidth is the swatch width in terminal cells.
const previewWidth = 8

// formatPalette formats the palette according to the specified format.
func formatPalette(p *palette.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatLines(p, showPreview, colour.RGBA.Hex), nil
	case "text":
		return formatLines(p, showPreview, colour.FormatText), nil
	case "rgb":
		return formatLines(p, showPreview, colour.RGBA.String), nil
	case "json":
		jsonBytes, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, text, rgb, json)", format)
	}
}

// formatLines writes one colour per line, optionally prefixed by a swatch.
func formatLines(p *palette.Palette, showPreview bool, label func(colour.RGBA) string) string {
	var b strings.Builder
	for _, c := range p.All() {
		if showPreview {
			b.WriteString(colour.FormatWithPreview(c, label(c), previewWidth))
		} else {
			b.WriteString(label(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
