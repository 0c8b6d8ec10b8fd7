package matchgeo

import (
	"errors"
	"testing"
	"time"
)

func TestNewApp_Options(t *testing.T) {
	type tc struct {
		opts    []AppOption
		wantErr bool
		check   func(t *testing.T, a *App)
	}

	tests := map[string]tc{
		"defaults": {
			check: func(t *testing.T, a *App) {
				if a.frameDuration != 16*time.Millisecond {
					t.Errorf("frameDuration = %v, want 16ms", a.frameDuration)
				}
				if cap(a.eventQueue) != 256 {
					t.Errorf("event queue capacity = %d, want 256", cap(a.eventQueue))
				}
				if w, h := a.Size(); w != 30 || h != 10 {
					t.Errorf("Size() = %dx%d, want the terminal size 30x10", w, h)
				}
				if !a.Dirty() {
					t.Error("new app should be dirty")
				}
				if a.Geometry() == nil || a.Geometry().Name() != "root" {
					t.Error("new app should have a root geometry scope")
				}
			},
		},
		"fixed size": {
			opts: []AppOption{WithSize(12, 4)},
			check: func(t *testing.T, a *App) {
				if w, h := a.Size(); w != 12 || h != 4 {
					t.Errorf("Size() = %dx%d, want 12x4", w, h)
				}
				if a.Buffer().Width() != 12 || a.Buffer().Height() != 4 {
					t.Error("buffer should use the fixed size")
				}
			},
		},
		"frame rate": {
			opts: []AppOption{WithFrameRate(50)},
			check: func(t *testing.T, a *App) {
				if a.frameDuration != 20*time.Millisecond {
					t.Errorf("frameDuration = %v, want 20ms", a.frameDuration)
				}
			},
		},
		"nil animation means snap": {
			opts: []AppOption{WithAnimation(nil)},
			check: func(t *testing.T, a *App) {
				if a.animator == nil {
					t.Error("animator is nil")
				}
			},
		},
		"invalid size":       {opts: []AppOption{WithSize(0, 4)}, wantErr: true},
		"frame rate too low": {opts: []AppOption{WithFrameRate(0)}, wantErr: true},
		"frame rate too high": {
			opts:    []AppOption{WithFrameRate(241)},
			wantErr: true,
		},
		"empty queue":  {opts: []AppOption{WithEventQueueSize(0)}, wantErr: true},
		"nil clock":    {opts: []AppOption{WithClock(nil)}, wantErr: true},
		"nil terminal": {opts: []AppOption{WithTerminal(nil)}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := append([]AppOption{WithTerminal(NewMockTerminal(30, 10))}, tt.opts...)
			a, err := NewApp(opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewApp() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp() error = %v", err)
			}
			defer a.Close()
			tt.check(t, a)
		})
	}
}

func TestWithSize_ErrInvalidSize(t *testing.T) {
	_, err := NewApp(WithTerminal(NewMockTerminal(1, 1)), WithSize(-1, 5))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestApp_QueueAndDrainUpdates(t *testing.T) {
	app, _ := newTestApp(t, 10, 10, WithEventQueueSize(2))

	ran := 0
	app.QueueUpdate(func() { ran++ })
	app.QueueUpdate(func() { ran++ })
	app.QueueUpdate(func() { ran++ }) // queue full, dropped

	if n := app.DrainUpdates(); n != 2 {
		t.Errorf("DrainUpdates() = %d, want 2", n)
	}
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
	if n := app.DrainUpdates(); n != 0 {
		t.Errorf("second DrainUpdates() = %d, want 0", n)
	}
}

func TestApp_StopIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t, 10, 10)
	app.Stop()
	app.Stop()

	select {
	case <-app.StopCh():
	default:
		t.Error("StopCh() not closed after Stop")
	}

	ran := false
	app.QueueUpdate(func() { ran = true })
	app.DrainUpdates()
	if ran {
		t.Error("update queued after Stop ran")
	}
}

func TestApp_Close_LeavesForeignTerminal(t *testing.T) {
	term := NewMockTerminal(10, 10)
	term.EnterAltScreen()
	app, err := NewApp(WithTerminal(term))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !term.IsInAltScreen() {
		t.Error("Close() changed the mode of a terminal it did not set up")
	}
}
