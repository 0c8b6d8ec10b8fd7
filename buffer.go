package matchgeo

import "strings"

// Buffer is a double-buffered grid of cells.
// Writes go to the back buffer; Diff reports what changed since the last
// Swap, which copies back to front.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

var _ Surface = (*Buffer)(nil)

// CellChange is one cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

var blankCell = Cell{Rune: ' ', Width: 1}

// NewBuffer creates a buffer filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer area starting at (0, 0).
func (b *Buffer) Bounds() Rect {
	return NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-buffer cell at (x, y), or the zero Cell when out of
// bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if i := b.idx(x, y); i >= 0 {
		return b.back[i]
	}
	return Cell{}
}

// SetCell stores c at (x, y). Out of bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y), keeping wide runes and their continuation
// cells consistent.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	w := RuneWidth(r)
	b.clearWide(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, Cell{Rune: ' ', Style: style, Width: 1})
			return
		}
		b.clearWide(x+1, y)
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(w)})
	if w == 2 {
		b.SetCell(x+1, y, Cell{Style: style})
	}
}

// clearWide blanks any wide rune that covers (x, y).
func (b *Buffer) clearWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation():
		b.SetCell(x-1, y, blankCell)
		b.SetCell(x, y, blankCell)
	case c.Width == 2:
		b.SetCell(x, y, blankCell)
		b.SetCell(x+1, y, blankCell)
	}
}

// SetString writes s starting at (x, y) without wrapping and returns the
// number of cells written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Bounds())
}

// SetStringClipped writes s starting at (x, y), dropping runes that fall
// outside clip. It returns the number of cells written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		w := RuneWidth(r)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+w <= clip.Right() {
			b.SetRune(x, y, r, style)
			written += w
		}
		x += w
	}
	return written
}

// Fill fills rect with r.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Bounds())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, style)
		}
	}
}

// FillRect fills rect with blank cells in style.
func (b *Buffer) FillRect(rect Rect, style Style) {
	b.Fill(rect, ' ', style)
}

// StrokeRect draws a box outline along the edges of rect.
func (b *Buffer) StrokeRect(rect Rect, border BorderStyle, style Style) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}
	ch := border.Chars()
	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X + 1; x < right; x++ {
		b.SetRune(x, rect.Y, ch.Top, style)
		b.SetRune(x, bottom, ch.Bottom, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		b.SetRune(rect.X, y, ch.Left, style)
		b.SetRune(right, y, ch.Right, style)
	}
	b.SetRune(rect.X, rect.Y, ch.TopLeft, style)
	b.SetRune(right, rect.Y, ch.TopRight, style)
	b.SetRune(rect.X, bottom, ch.BottomLeft, style)
	b.SetRune(right, bottom, ch.BottomRight, style)
}

// DrawText writes text on row y, clipped to clip.
func (b *Buffer) DrawText(x, y int, text string, style Style, clip Rect) {
	b.SetStringClipped(x, y, text, style, clip)
}

// Clear blanks the back buffer.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// Diff returns the cells that changed since the last Swap in row-major
// order.
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for i := range b.back {
		if b.back[i] != b.front[i] {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate forces the next Diff to report every cell.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{Rune: -1}
	}
}

// String renders the back buffer as text, one line per row.
func (b *Buffer) String() string {
	return strings.Join(b.lines(), "\n")
}

// StringTrimmed is String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	lines := b.lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func (b *Buffer) lines() []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := range b.height {
		sb.Reset()
		for _, c := range b.back[y*b.width : (y+1)*b.width] {
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// Resize changes the dimensions and blanks both buffers.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	for i := range b.back {
		b.front[i] = blankCell
		b.back[i] = blankCell
	}
}
