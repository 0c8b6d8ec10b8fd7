package matchgeo

import "fmt"

// Close stops the app, runs component cleanups and, when NewApp set up the
// process terminal, restores it.
func (a *App) Close() error {
	a.Stop()
	a.clearRootComponent()
	a.mounts.sweep()

	if !a.ownsTerminal {
		return nil
	}
	a.terminal.ShowCursor()
	a.terminal.ExitAltScreen()
	if err := a.terminal.ExitRawMode(); err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}
