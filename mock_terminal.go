package matchgeo

import "strings"

// MockTerminal is an in-memory Terminal for tests. It applies flushed
// changes to its own cell grid so the visible screen can be asserted.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	flushes       int
	clears        int
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a blank mock terminal.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{width: width, height: height, cells: make([]Cell, width*height)}
	m.Clear()
	m.clears = 0
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Resize changes the reported size and blanks the screen.
func (m *MockTerminal) Resize(width, height int) {
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	m.Clear()
}

// Flush applies changes to the screen.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.flushes++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

// Clear blanks the screen and homes the cursor.
func (m *MockTerminal) Clear() {
	m.clears++
	for i := range m.cells {
		m.cells[i] = blankCell
	}
	m.cursorX, m.cursorY = 0, 0
}

func (m *MockTerminal) SetCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
}

func (m *MockTerminal) HideCursor() { m.cursorHidden = true }
func (m *MockTerminal) ShowCursor() { m.cursorHidden = false }

func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

func (m *MockTerminal) EnterAltScreen() { m.inAltScreen = true }
func (m *MockTerminal) ExitAltScreen()  { m.inAltScreen = false }

// Cell returns the screen cell at (x, y).
func (m *MockTerminal) Cell(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// IsInRawMode reports whether raw mode is active.
func (m *MockTerminal) IsInRawMode() bool { return m.inRawMode }

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// FlushCount returns how many times Flush was called.
func (m *MockTerminal) FlushCount() int { return m.flushes }

// ClearCount returns how many times Clear was called since creation.
func (m *MockTerminal) ClearCount() int { return m.clears }

// String returns the screen as text, one line per row.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := range m.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range m.width {
			c := m.cells[y*m.width+x]
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each row.
func (m *MockTerminal) StringTrimmed() string {
	lines := strings.Split(m.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
