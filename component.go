package matchgeo

// Component renders a subtree. The root component is rendered again at the
// start of every pass, so Render should be a pure function of the
// component's State values.
type Component interface {
	Render(app *App) *Element
}

// Initializer is implemented by components that need setup when first
// mounted. The returned function, if non-nil, runs when the component
// leaves the tree.
type Initializer interface {
	Init() func()
}

// WatcherProvider is implemented by components that own timers or channel
// watchers. Watchers are started once, when the component is first mounted.
type WatcherProvider interface {
	Watchers() []Watcher
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(app *App) *Element

// Render calls f.
func (f ComponentFunc) Render(app *App) *Element {
	return f(app)
}
