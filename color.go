package matchgeo

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault is the surface's default color.
	ColorDefault ColorType = iota
	// ColorANSI is an entry of the ANSI 256 palette.
	ColorANSI
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a terminal color. The zero value is the default color, which
// each Surface resolves on its own.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor returns the surface default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("parse color %q: expected #RGB or #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Type returns the representation of c.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether c is the default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index of an ANSI color.
func (c Color) ANSI() uint8 {
	return c.r
}

// Equal reports whether both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Standard ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors.
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16 holds typical terminal values for palette entries 0-15.
var ansi16 = [16][3]uint8{
	{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
	{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
	{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
	{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
}

// ToRGBValues approximates any color as RGB. The default color maps to
// black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			v := ansi16[idx]
			return v[0], v[1], v[2]
		case idx < 232:
			idx -= 16
			return cubeLevel(idx / 36), cubeLevel(idx % 36 / 6), cubeLevel(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

// RGBA converts c for pixel surfaces, using fallback for the default color.
func (c Color) RGBA(fallback color.RGBA) color.RGBA {
	if c.IsDefault() {
		return fallback
	}
	r, g, b := c.ToRGBValues()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// IsLight reports whether c is perceptually light. The default color is
// treated as dark.
func (c Color) IsLight() bool {
	if c.IsDefault() {
		return false
	}
	r, g, b := c.ToRGBValues()
	return 299*int(r)+587*int(g)+114*int(b) > 150_000
}
