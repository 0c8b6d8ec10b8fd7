package matchgeo

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrReverse swaps foreground and background colors.
	AttrReverse
)

// Style combines text attributes with foreground and background colors.
// The zero value is default styling.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of s with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a copy of s with bold enabled.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy of s with dim enabled.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Reverse returns a copy of s with reverse video enabled.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Equal reports whether both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// HasAttr reports whether a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a != 0
}
