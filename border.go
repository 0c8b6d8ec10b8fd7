package matchgeo

// BorderStyle selects the box-drawing characters of a border.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Chars returns the box-drawing characters for b. BorderNone yields spaces.
func (b BorderStyle) Chars() BorderChars {
	if c, ok := borderChars[b]; ok {
		return c
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

func (b BorderStyle) String() string {
	switch b {
	case BorderSingle:
		return "single"
	case BorderDouble:
		return "double"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	}
	return "none"
}
