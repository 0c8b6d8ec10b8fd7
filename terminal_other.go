//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package matchgeo

import "errors"

var errNoRawMode = errors.New("raw mode is not supported on this platform")

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) {
	return nil, errNoRawMode
}

func disableRawMode(int, *rawModeState) error {
	return nil
}

func terminalSize(int) (int, int, error) {
	return 0, 0, errNoRawMode
}
