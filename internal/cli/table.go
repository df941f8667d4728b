package cli

import (
	"strings"
	"unicode/utf8"
)

// columnGap separates table columns.
const columnGap = "  "

// Table renders rows under a header with columns sized to their content.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth wraps cells in column col at word boundaries once they
// exceed width runes.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats the table as a header line, a dashed separator and the rows.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	// Each row becomes one or more physical lines once cells are wrapped.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			wrapped[r][c] = wrapText(cell, t.maxWidths[c])
			for _, line := range wrapped[r][c] {
				widths[c] = max(widths[c], utf8.RuneCountInString(line))
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells func(col int) string) {
		parts := make([]string, len(widths))
		for col, w := range widths {
			parts[col] = padRight(cells(col), w)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
		b.WriteByte('\n')
	}

	writeLine(func(col int) string { return t.headers[col] })
	writeLine(func(col int) string { return strings.Repeat("-", widths[col]) })

	for _, row := range wrapped {
		lines := 1
		for _, cell := range row {
			lines = max(lines, len(cell))
		}
		for l := 0; l < lines; l++ {
			writeLine(func(col int) string {
				if l < len(row[col]) {
					return row[col][l]
				}
				return ""
			})
		}
	}

	return b.String()
}

// padRight pads s with spaces to width runes. Longer strings are unchanged.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// wrapText splits text into lines of at most width runes at word boundaries.
// Words longer than width are broken. A width of 0 disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}

		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
