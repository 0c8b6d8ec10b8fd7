package matchgeo

import (
	"context"
	"os"
	"os/signal"
	"time"
)

// Run renders and processes queued updates until ctx is done, Stop is
// called or the process receives an interrupt. A pass runs only when the
// app is dirty, so a settled tree costs nothing per frame.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
			a.Stop()
		case <-a.stopCh:
		}
	}()

	Logger().Info("run loop started", "frame", a.frameDuration)
	defer Logger().Info("run loop stopped", "passes", a.pass)

	for !a.stopped.Load() {
		frameStart := time.Now()

		// Process queued updates for up to half the frame budget.
		deadline := frameStart.Add(a.frameDuration / 2)
	drain:
		for time.Now().Before(deadline) {
			select {
			case fn := <-a.eventQueue:
				fn()
			case <-a.stopCh:
				return nil
			default:
				break drain
			}
		}

		if a.checkAndClearDirty() {
			a.renderPass()
		}

		if elapsed := time.Since(frameStart); elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			}
		}
	}
	return nil
}

// Stop makes Run return and stops all watchers. It is idempotent.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		close(a.stopCh)
	})
}

// QueueUpdate runs fn on the main loop. It is safe to call from any
// goroutine; updates are dropped once the app stops or the queue is full.
func (a *App) QueueUpdate(fn func()) {
	if a.stopped.Load() {
		return
	}
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	default:
		Logger().Warn("event queue full, update dropped")
	}
}

// DrainUpdates runs every queued update without rendering and returns how
// many ran.
func (a *App) DrainUpdates() int {
	n := 0
	for {
		select {
		case fn := <-a.eventQueue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Settle renders until the app is no longer dirty or limit passes have run,
// and returns the number of passes. Geometry needs one extra pass to reach
// mirrors, so a change typically settles in two or three.
func (a *App) Settle(limit int) int {
	n := 0
	for n < limit && a.checkAndClearDirty() {
		a.renderPass()
		n++
	}
	return n
}
