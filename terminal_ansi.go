package matchgeo

import (
	"io"
	"os"
)

// ANSITerminal implements Terminal with ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer
	inFd      int
	outFd     int
	caps      Capabilities
	lastStyle Style
	styled    bool
	esc       *escBuilder
	rawState  *rawModeState
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out. in is only used for
// raw mode and must be a tty for EnterRawMode to succeed. Colors are
// limited to what the environment advertises.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:       out,
		inFd:      -1,
		outFd:     -1,
		caps:      DetectCapabilities(os.Getenv),
		esc:       newEscBuilder(4096),
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Capabilities returns the detected color support.
func (t *ANSITerminal) Capabilities() Capabilities {
	return t.caps
}

// Size returns the terminal dimensions, or 80x24 when they cannot be
// queried.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := terminalSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes the given cell changes, eliding cursor moves for
// consecutive cells and style codes for unchanged styles.
func (t *ANSITerminal) Flush(changes []CellChange) {
	t.esc.Reset()
	lastX, lastY := -1, -1
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !t.styled || ch.Cell.Style != t.lastStyle {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle, t.styled = ch.Cell.Style, true
		}
		if ch.Cell.Rune <= 0 {
			t.esc.WriteRune(' ')
		} else {
			t.esc.WriteRune(ch.Cell.Rune)
		}
		lastX, lastY = ch.X+max(int(ch.Cell.Width), 1)-1, ch.Y
	}
	t.write()
}

// Clear clears the screen and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	t.styled = false
	t.write()
}

func (t *ANSITerminal) SetCursor(x, y int) {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	t.write()
}

func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.write()
}

func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.write()
}

// EnterRawMode puts the input tty into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.write()
}

func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ExitAltScreen()
	t.styled = false
	t.write()
}

func (t *ANSITerminal) write() {
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		Logger().Debug("terminal write failed", "err", err)
	}
}
