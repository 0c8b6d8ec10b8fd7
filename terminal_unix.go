//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package matchgeo

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var errNotATerminal = errors.New("not a terminal")

type rawModeState struct {
	termios unix.Termios
}

// enableRawMode turns off echo, canonical input and output processing on
// fd. Signal generation stays on so Ctrl+C still interrupts Run.
func enableRawMode(fd int) (*rawModeState, error) {
	if fd < 0 {
		return nil, errNotATerminal
	}
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}
	state := &rawModeState{termios: *termios}

	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("set termios: %w", err)
	}
	return state, nil
}

func disableRawMode(fd int, state *rawModeState) error {
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	return nil
}

func terminalSize(fd int) (width, height int, err error) {
	if fd < 0 {
		return 0, 0, errNotATerminal
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
