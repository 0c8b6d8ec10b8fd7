package matchgeo

import "golang.org/x/text/width"

// Cell is one character cell of a Buffer. Wide runes occupy two cells: the
// first holds the rune, the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a cell, measuring the rune's display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// IsEmpty reports whether c is a blank cell with default styling.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || (c.Rune == ' ' && c.Style == Style{})
}

// RuneWidth returns the number of cells r occupies: 2 for East Asian wide
// and fullwidth runes, 1 otherwise.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
