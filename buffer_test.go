package matchgeo

import "testing"

func TestBuffer_SetString(t *testing.T) {
	type tc struct {
		x, y        int
		text        string
		clip        Rect
		want        string
		wantWritten int
	}

	tests := map[string]tc{
		"plain": {
			x: 1, y: 0, text: "abc",
			clip:        NewRect(0, 0, 6, 1),
			want:        " abc",
			wantWritten: 3,
		},
		"clipped on the right": {
			x: 3, y: 0, text: "abcdef",
			clip:        NewRect(0, 0, 6, 1),
			want:        "   abc",
			wantWritten: 3,
		},
		"clipped on the left": {
			x: -2, y: 0, text: "abcdef",
			clip:        NewRect(0, 0, 6, 1),
			want:        "cdef",
			wantWritten: 4,
		},
		"narrow clip": {
			x: 0, y: 0, text: "abcdef",
			clip:        NewRect(2, 0, 2, 1),
			want:        "  cd",
			wantWritten: 2,
		},
		"row outside clip": {
			x: 0, y: 0, text: "abc",
			clip: NewRect(0, 1, 6, 1),
		},
		"wide runes": {
			x: 0, y: 0, text: "日本",
			clip:        NewRect(0, 0, 6, 1),
			want:        "日本",
			wantWritten: 4,
		},
		"wide rune that does not fit is dropped": {
			x: 0, y: 0, text: "a日",
			clip:        NewRect(0, 0, 2, 1),
			want:        "a",
			wantWritten: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(6, 1)
			n := buf.SetStringClipped(tt.x, tt.y, tt.text, NewStyle(), tt.clip)
			if n != tt.wantWritten {
				t.Errorf("written = %d, want %d", n, tt.wantWritten)
			}
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuffer_WideRuneOverwrite(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.SetString(0, 0, "日", NewStyle())
	if !buf.Cell(1, 0).IsContinuation() {
		t.Fatal("cell after a wide rune should be a continuation")
	}

	buf.SetRune(1, 0, 'x', NewStyle())
	if got := buf.Cell(0, 0).Rune; got != ' ' {
		t.Errorf("(0,0) = %q, want the broken wide rune blanked", got)
	}
	if got := buf.StringTrimmed(); got != " x" {
		t.Errorf("buffer = %q, want %q", got, " x")
	}
}

func TestBuffer_StrokeRect(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.StrokeRect(NewRect(0, 0, 5, 3), BorderSingle, NewStyle())
	want := "┌───┐\n│   │\n└───┘"
	if got := buf.String(); got != want {
		t.Errorf("buffer =\n%s\nwant\n%s", got, want)
	}

	small := NewBuffer(3, 3)
	small.StrokeRect(NewRect(0, 0, 1, 3), BorderSingle, NewStyle())
	if got := small.StringTrimmed(); got != "\n\n" {
		t.Errorf("rect narrower than 2 cells drew %q", got)
	}
}

func TestBuffer_DiffAndSwap(t *testing.T) {
	buf := NewBuffer(3, 2)
	if d := buf.Diff(); len(d) != 0 {
		t.Fatalf("fresh buffer Diff() = %d changes, want 0", len(d))
	}

	buf.SetRune(1, 1, 'a', NewStyle())
	buf.SetRune(0, 0, 'b', NewStyle())
	d := buf.Diff()
	if len(d) != 2 {
		t.Fatalf("Diff() = %d changes, want 2", len(d))
	}
	if d[0].X != 0 || d[0].Y != 0 || d[1].X != 1 || d[1].Y != 1 {
		t.Errorf("Diff() not in row-major order: %+v", d)
	}

	buf.Swap()
	if d := buf.Diff(); len(d) != 0 {
		t.Errorf("Diff() after Swap = %d changes, want 0", len(d))
	}

	buf.Invalidate()
	if d := buf.Diff(); len(d) != 6 {
		t.Errorf("Diff() after Invalidate = %d changes, want 6", len(d))
	}
}

func TestBuffer_Resize(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetRune(0, 0, 'x', NewStyle())
	buf.Resize(4, 1)
	if buf.Width() != 4 || buf.Height() != 1 {
		t.Fatalf("size = %dx%d, want 4x1", buf.Width(), buf.Height())
	}
	if got := buf.StringTrimmed(); got != "" {
		t.Errorf("resized buffer = %q, want blank", got)
	}
	if buf.Bounds() != NewRect(0, 0, 4, 1) {
		t.Errorf("Bounds() = %v", buf.Bounds())
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetRune(-1, 0, 'x', NewStyle())
	buf.SetRune(2, 0, 'x', NewStyle())
	buf.FillRect(NewRect(-5, -5, 3, 3), NewStyle())
	if got := buf.Cell(5, 5); got != (Cell{}) {
		t.Errorf("Cell() out of bounds = %+v, want zero", got)
	}
	if got := buf.StringTrimmed(); got != "\n" {
		t.Errorf("buffer = %q, want blank", got)
	}
}
