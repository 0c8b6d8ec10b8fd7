package matchgeo

import "strconv"

// escBuilder accumulates ANSI escape sequences into a reusable byte slice.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset()        { e.buf = e.buf[:0] }
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) csi(params ...int) {
	e.buf = append(e.buf, '\x1b', '[')
	for i, p := range params {
		if i > 0 {
			e.buf = append(e.buf, ';')
		}
		e.buf = strconv.AppendInt(e.buf, int64(p), 10)
	}
}

// MoveTo positions the cursor at the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.csi(y+1, x+1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen() {
	e.csi()
	e.buf = append(e.buf, "2J"...)
}

func (e *escBuilder) HideCursor() {
	e.csi()
	e.buf = append(e.buf, "?25l"...)
}

func (e *escBuilder) ShowCursor() {
	e.csi()
	e.buf = append(e.buf, "?25h"...)
}

func (e *escBuilder) EnterAltScreen() {
	e.csi()
	e.buf = append(e.buf, "?1049h"...)
}

func (e *escBuilder) ExitAltScreen() {
	e.csi()
	e.buf = append(e.buf, "?1049l"...)
}

func (e *escBuilder) ResetStyle() {
	e.csi(0)
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = append(e.buf, string(r)...)
}

// SetStyle emits SGR codes for s, starting from a reset.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	params := []int{0}
	for _, a := range [...]struct {
		attr Attr
		code int
	}{{AttrBold, 1}, {AttrDim, 2}, {AttrItalic, 3}, {AttrUnderline, 4}, {AttrReverse, 7}} {
		if s.HasAttr(a.attr) {
			params = append(params, a.code)
		}
	}
	params = appendColor(params, s.Fg, 30, caps)
	params = appendColor(params, s.Bg, 40, caps)
	e.csi(params...)
	e.buf = append(e.buf, 'm')
}

// appendColor adds the SGR parameters for c. base is 30 for foreground
// and 40 for background.
func appendColor(params []int, c Color, base int, caps Capabilities) []int {
	if caps.Colors == ColorNone {
		return params
	}
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8:
			return append(params, base+idx)
		case idx < 16:
			return append(params, base+60+idx-8)
		default:
			return append(params, base+8, 5, idx)
		}
	case ColorRGB:
		r, g, b := c.ToRGBValues()
		if !caps.TrueColor() {
			return append(params, base+8, 5, rgbToANSI256(r, g, b))
		}
		return append(params, base+8, 2, int(r), int(g), int(b))
	}
	return params
}

// rgbToANSI256 maps a true color onto the 6x6x6 cube or the gray ramp.
func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		}
		return 232 + (int(r)-8)*24/240
	}
	return 16 + 36*(int(r)*5/255) + 6*(int(g)*5/255) + int(b)*5/255
}
