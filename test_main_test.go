package matchgeo

import (
	"testing"
)

// newTestApp returns an app rendering to a mock terminal of the given
// size. Extra options are applied after the terminal.
func newTestApp(t *testing.T, width, height int, opts ...AppOption) (*App, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(width, height)
	app, err := NewApp(append([]AppOption{WithTerminal(term)}, opts...)...)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, term
}
