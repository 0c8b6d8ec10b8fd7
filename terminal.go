package matchgeo

// Terminal is the output side of a character terminal. ANSITerminal talks
// to a real one; MockTerminal records output for tests.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush writes cell changes, given in row-major order.
	Flush(changes []CellChange)

	// Clear clears the whole screen.
	Clear()

	SetCursor(x, y int)
	HideCursor()
	ShowCursor()

	// EnterRawMode disables line buffering and echo. ExitRawMode restores
	// the previous mode.
	EnterRawMode() error
	ExitRawMode() error

	EnterAltScreen()
	ExitAltScreen()
}

// flush writes the buffer diff to term and swaps the buffers. With full
// set every cell is written after clearing the screen.
func flush(term Terminal, buf *Buffer, full bool) int {
	if full {
		term.Clear()
		buf.Invalidate()
	}
	changes := buf.Diff()
	if len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
	return len(changes)
}
