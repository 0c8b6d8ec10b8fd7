package matchgeo

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithTerminal renders to t instead of the process terminal. The app does
// not change t's modes.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		a.terminal = t
		return nil
	}
}

// WithSize fixes the render size instead of following the terminal.
func WithSize(width, height int) AppOption {
	return func(a *App) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("render size %dx%d: %w", width, height, ErrInvalidSize)
		}
		a.width, a.height = width, height
		return nil
	}
}

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 || fps > 240 {
			return fmt.Errorf("frame rate %d out of range 1-240", fps)
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the main-loop queue.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithClock replaces time.Now for animations.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		a.clock = now
		return nil
	}
}

// WithAnimation sets how mirrors move between frames. Default is Snap.
func WithAnimation(animator Animator) AppOption {
	return func(a *App) error {
		if animator == nil {
			animator = Snap()
		}
		a.animator = animator
		return nil
	}
}

// WithPassObserver registers fn to receive a report after every pass.
func WithPassObserver(fn func(PassReport)) AppOption {
	return func(a *App) error {
		a.observers = append(a.observers, fn)
		return nil
	}
}

// WithRoot sets a static root element.
func WithRoot(root *Element) AppOption {
	return func(a *App) error {
		a.root = root
		return nil
	}
}
