// State[T] wraps a value and notifies bindings when it changes.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the main loop
//   - For background updates, use watchers or App.QueueUpdate()
//
// Example usage:
//
//	selected := matchgeo.NewState(app, 0)
//	selected.Bind(func(v int) {
//	    matchgeo.Logger().Debug("selection changed", "index", v)
//	})
//	selected.Set(2) // runs the binding and schedules a render pass
package matchgeo

import (
	"sync"
	"sync/atomic"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int
	pending      map[uint64]func()
	pendingOrder []uint64
}

func newBatchContext() batchContext {
	return batchContext{pending: make(map[uint64]func())}
}

// globalBindingID keeps binding IDs unique across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value owned by one App.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	app      *App
}

type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind removes a binding registered with State.Bind.
type Unbind func()

// NewState creates a state bound to app.
func NewState[T any](app *App, initial T) *State[T] {
	if app == nil {
		panic("matchgeo: nil app in NewState")
	}
	return &State[T]{value: initial, app: app}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v, marks the app dirty so another render pass runs, and
// notifies bindings. Inside App.Batch, bindings are deferred until the
// outermost batch returns and each binding runs once with its final value.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	s.app.MarkDirty()

	batch := &s.app.batch
	batch.mu.Lock()
	batching := batch.depth > 0
	if batching {
		for _, b := range active {
			fn, value := b.fn, v
			if _, seen := batch.pending[b.id]; !seen {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(value) }
		}
	}
	batch.mu.Unlock()

	if !batching {
		for _, b := range active {
			b.fn(v)
		}
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to run after every Set, in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: globalBindingID.Add(1), fn: fn, active: true}

	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch runs fn and defers binding callbacks until it returns.
// Nested batches flush when the outermost one completes.
func (a *App) Batch(fn func()) {
	batch := &a.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
