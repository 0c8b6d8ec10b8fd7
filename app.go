package matchgeo

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ErrInvalidSize is returned for non-positive render sizes.
var ErrInvalidSize = errors.New("matchgeo: size must be positive")

// App drives render passes: it owns the terminal and cell buffer, the root
// element or component, the root geometry scope and the per-mirror state
// that must survive tree rebuilds.
type App struct {
	terminal        Terminal
	ownsTerminal    bool // terminal was created and set up by NewApp
	buffer          *Buffer
	needsFullRedraw bool
	width, height   int // fixed render size; zero follows the terminal

	root          *Element
	rootComponent Component
	rootCleanup   func()

	geometry *GeometryScope
	mirrors  *mirrorArena
	mounts   *mountState

	dirty atomic.Bool
	batch batchContext

	clock     func() time.Time
	animator  Animator
	pass      uint64
	observers []func(PassReport)
	last      PassReport

	eventQueue     chan func()
	stopCh         chan struct{}
	stopOnce       sync.Once
	stopped        atomic.Bool
	frameDuration  time.Duration
	eventQueueSize int
}

// NewApp creates an app. Without WithTerminal it takes over the process's
// terminal: raw mode, alternate screen and a hidden cursor, all undone by
// Close.
func NewApp(opts ...AppOption) (*App, error) {
	a := &App{
		clock:          time.Now,
		animator:       Snap(),
		frameDuration:  16 * time.Millisecond,
		eventQueueSize: 256,
		mirrors:        newMirrorArena(),
		mounts:         newMountState(),
		batch:          newBatchContext(),
		stopCh:         make(chan struct{}),
	}
	a.geometry = NewGeometryScope(a, "root")

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.eventQueue = make(chan func(), a.eventQueueSize)

	if a.terminal == nil {
		term := NewANSITerminal(os.Stdout, os.Stdin)
		if err := term.EnterRawMode(); err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		term.EnterAltScreen()
		term.HideCursor()
		Logger().Debug("terminal detected", "colors", term.Capabilities().String())
		a.terminal = term
		a.ownsTerminal = true
	}

	w, h := a.Size()
	a.buffer = NewBuffer(w, h)
	a.needsFullRedraw = true
	a.MarkDirty()
	Logger().Info("app created", "width", w, "height", h)
	return a, nil
}

// SetRoot sets a static root element. It replaces any root component.
func (a *App) SetRoot(root *Element) {
	a.clearRootComponent()
	a.root = root
	a.MarkDirty()
}

// SetRootComponent sets the component rendered at the start of every pass.
// Its Init and watchers run now.
func (a *App) SetRootComponent(c Component) {
	a.clearRootComponent()
	a.rootComponent = c
	a.rootCleanup = a.initComponent(c)
	a.MarkDirty()
}

func (a *App) clearRootComponent() {
	if a.rootCleanup != nil {
		a.rootCleanup()
	}
	a.rootComponent, a.rootCleanup = nil, nil
}

// Root returns the element tree of the last pass.
func (a *App) Root() *Element {
	return a.root
}

// Geometry returns the app's root geometry scope.
func (a *App) Geometry() *GeometryScope {
	return a.geometry
}

// Size returns the render size: the WithSize value, or the terminal size.
func (a *App) Size() (width, height int) {
	if a.width > 0 && a.height > 0 {
		return a.width, a.height
	}
	return a.terminal.Size()
}

// Terminal returns the terminal the app renders to.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Buffer returns the cell buffer holding the last rendered frame.
func (a *App) Buffer() *Buffer {
	return a.buffer
}

// Pass returns the number of completed render passes.
func (a *App) Pass() uint64 {
	return a.pass
}

// LastReport returns the report of the most recent pass.
func (a *App) LastReport() PassReport {
	return a.last
}

// Now returns the app clock's current time.
func (a *App) Now() time.Time {
	return a.clock()
}

// EventQueue returns the channel watchers post main-loop callbacks to.
func (a *App) EventQueue() chan<- func() {
	return a.eventQueue
}

// StopCh is closed when the app stops.
func (a *App) StopCh() <-chan struct{} {
	return a.stopCh
}
