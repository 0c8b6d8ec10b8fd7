package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/matchgeo"
)

// Base cell size in pixels at scale 1. basicfont.Face7x13 fits inside.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Palette resolves default colors.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultPalette is a dark theme.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
	Foreground: color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff},
}

// Canvas is a pixel Surface.
type Canvas struct {
	dc         *gg.Context
	cols, rows int
	cw, ch     int
	scale      int
	palette    Palette
}

var _ matchgeo.Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of cols x rows cells, each cell drawn at
// scale times the base cell size.
func NewCanvas(cols, rows, scale int, palette Palette) (*Canvas, error) {
	if cols <= 0 || rows <= 0 || scale <= 0 {
		return nil, fmt.Errorf("canvas %dx%d at scale %d: %w", cols, rows, scale, matchgeo.ErrInvalidSize)
	}
	c := &Canvas{
		cols:    cols,
		rows:    rows,
		cw:      cellWidth * scale,
		ch:      cellHeight * scale,
		scale:   scale,
		palette: palette,
	}
	c.dc = gg.NewContext(cols*c.cw, rows*c.ch)
	c.dc.ClearWithColor(gg.FromColor(palette.Background))
	return c, nil
}

// Bounds returns the canvas size in cells.
func (c *Canvas) Bounds() matchgeo.Rect {
	return matchgeo.NewRect(0, 0, c.cols, c.rows)
}

// pixels converts a cell rect to pixel coordinates.
func (c *Canvas) pixels(r matchgeo.Rect) (x, y, w, h float64) {
	return float64(r.X * c.cw), float64(r.Y * c.ch), float64(r.Width * c.cw), float64(r.Height * c.ch)
}

func (c *Canvas) fill(r matchgeo.Rect, col color.RGBA) {
	r = r.Intersect(c.Bounds())
	if r.IsEmpty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(c.pixels(r))
	_ = c.dc.Fill()
}

// FillRect paints the cells of r with the style's background.
func (c *Canvas) FillRect(r matchgeo.Rect, style matchgeo.Style) {
	c.fill(r, style.Bg.RGBA(c.palette.Background))
}

// StrokeRect outlines r half a cell inside its edge, so the line sits
// where the box-drawing characters would.
func (c *Canvas) StrokeRect(r matchgeo.Rect, border matchgeo.BorderStyle, style matchgeo.Style) {
	if border == matchgeo.BorderNone || r.IsEmpty() {
		return
	}
	if !style.Bg.IsDefault() {
		c.fill(r, style.Bg.RGBA(c.palette.Background))
	}
	inset := float64(min(c.cw, c.ch)) / 2
	c.outline(r, style.Fg.RGBA(c.palette.Foreground), lineWidth(border)*float64(c.scale), inset)
}

// outline strokes r inset pixels inside its pixel edge.
func (c *Canvas) outline(r matchgeo.Rect, col color.RGBA, width, inset float64) {
	x, y, w, h := c.pixels(r)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(x+inset, y+inset, w-2*inset, h-2*inset)
	_ = c.dc.Stroke()
}

func lineWidth(b matchgeo.BorderStyle) float64 {
	switch b {
	case matchgeo.BorderThick, matchgeo.BorderDouble:
		return 3
	}
	return 1.5
}

// DrawText renders text starting at cell (x, y), dropping runes outside
// clip. Each rune takes one cell.
func (c *Canvas) DrawText(x, y int, text string, style matchgeo.Style, clip matchgeo.Rect) {
	clip = clip.Intersect(c.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return
	}
	runes := []rune(text)
	first := max(clip.X-x, 0)
	last := min(len(runes), clip.Right()-x)
	if first >= last {
		return
	}
	span := matchgeo.NewRect(x+first, y, last-first, 1)
	if !style.Bg.IsDefault() {
		c.fill(span, style.Bg.RGBA(c.palette.Background))
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, span.Width*cellWidth, cellHeight))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(style.Fg.RGBA(c.palette.Foreground)),
		Face: basicfont.Face7x13,
	}
	for i, r := range runes[first:last] {
		d.Dot = fixed.P(i*cellWidth, basicfont.Face7x13.Ascent+2)
		d.DrawString(string(r))
	}

	var src image.Image = glyphs
	if c.scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, span.Width*c.cw, c.ch))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), glyphs, glyphs.Bounds(), draw.Src, nil)
		src = scaled
	}
	px, py, _, _ := c.pixels(span)
	c.dc.DrawImage(gg.ImageBufFromImage(src), px, py)
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
