package matchgeo

// mountKey identifies a component instance by its parent and position.
// Components at the same (parent, index) are the same instance across
// passes.
type mountKey struct {
	parent Component
	index  int
}

// mountState caches component instances with mark-and-sweep: each pass
// marks the keys it mounts, then sweep drops everything unmarked.
type mountState struct {
	cache    map[mountKey]Component
	cleanups map[mountKey]func()
	active   map[mountKey]bool
}

func newMountState() *mountState {
	return &mountState{
		cache:    make(map[mountKey]Component),
		cleanups: make(map[mountKey]func()),
		active:   make(map[mountKey]bool),
	}
}

// Mount returns the rendered subtree of the child component at index under
// parent. The first call runs factory, Init and starts the component's
// watchers; later passes reuse the cached instance.
func (a *App) Mount(parent Component, index int, factory func() Component) *Element {
	ms := a.mounts
	key := mountKey{parent: parent, index: index}
	ms.active[key] = true

	instance, cached := ms.cache[key]
	if !cached {
		instance = factory()
		ms.cache[key] = instance
		if cleanup := a.initComponent(instance); cleanup != nil {
			ms.cleanups[key] = cleanup
		}
	}

	el := instance.Render(a)
	if el != nil {
		el.component = instance
	}
	return el
}

// initComponent runs Init and starts watchers for a newly mounted component.
func (a *App) initComponent(c Component) func() {
	var cleanup func()
	if init, ok := c.(Initializer); ok {
		cleanup = init.Init()
	}
	if wp, ok := c.(WatcherProvider); ok {
		for _, w := range wp.Watchers() {
			w.Start(a.eventQueue, a.stopCh)
		}
	}
	return cleanup
}

// sweep removes instances that were not mounted during the last pass and
// runs their cleanups.
func (ms *mountState) sweep() int {
	removed := 0
	for key := range ms.cache {
		if ms.active[key] {
			continue
		}
		if cleanup, ok := ms.cleanups[key]; ok {
			cleanup()
			delete(ms.cleanups, key)
		}
		delete(ms.cache, key)
		removed++
	}
	clear(ms.active)
	return removed
}
