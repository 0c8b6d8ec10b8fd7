package matchgeo

import "time"

// Watcher is a background event source. Start launches its goroutine;
// every callback is handed to the main loop through eventQueue and the
// goroutine exits when stopCh closes.
type Watcher interface {
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// channelWatcher calls handler on the main loop for each value from ch.
type channelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a watcher that calls handler on the main loop for every
// value received on ch, until ch closes.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &channelWatcher[T]{ch: ch, handler: handler}
}

func (w *channelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case v, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case eventQueue <- func() { w.handler(v) }:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher that calls handler on the main loop every
// interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case eventQueue <- w.handler:
				case <-stopCh:
					return
				}
			}
		}
	}()
}
