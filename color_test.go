package matchgeo

import (
	"image/color"
	"testing"
)

func TestHexColor(t *testing.T) {
	type tc struct {
		in      string
		want    Color
		wantErr bool
	}

	tests := map[string]tc{
		"long form":    {in: "#ff8000", want: RGBColor(255, 128, 0)},
		"no hash":      {in: "0a0b0c", want: RGBColor(10, 11, 12)},
		"short form":   {in: "#f80", want: RGBColor(255, 136, 0)},
		"bad length":   {in: "#ff80", wantErr: true},
		"bad digits":   {in: "#gg0000", wantErr: true},
		"empty string": {in: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := HexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("HexColor(%q) error = nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexColor(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("HexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_ToRGBValues(t *testing.T) {
	type tc struct {
		c       Color
		r, g, b uint8
	}

	tests := map[string]tc{
		"default is black": {c: DefaultColor()},
		"rgb":              {c: RGBColor(1, 2, 3), r: 1, g: 2, b: 3},
		"ansi white":       {c: BrightWhite, r: 255, g: 255, b: 255},
		"cube red":         {c: ANSIColor(196), r: 255},
		"cube origin":      {c: ANSIColor(16)},
		"gray ramp":        {c: ANSIColor(232), r: 8, g: 8, b: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b := tt.c.ToRGBValues()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ToRGBValues() = %d,%d,%d, want %d,%d,%d", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColor_IsLight(t *testing.T) {
	type tc struct {
		c    Color
		want bool
	}

	tests := map[string]tc{
		"default":       {c: DefaultColor(), want: false},
		"black":         {c: Black, want: false},
		"white":         {c: BrightWhite, want: true},
		"bright yellow": {c: BrightYellow, want: true},
		"blue":          {c: Blue, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.IsLight(); got != tt.want {
				t.Errorf("IsLight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	fallback := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	if got := DefaultColor().RGBA(fallback); got != fallback {
		t.Errorf("default RGBA() = %v, want fallback", got)
	}
	if got := RGBColor(1, 2, 3).RGBA(fallback); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("RGBA() = %v", got)
	}
}
