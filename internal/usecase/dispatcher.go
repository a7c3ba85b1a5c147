package usecase

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher runs fire-and-forget background tasks for deferred-mode
// requests. Each task gets its own goroutine; multiple tasks may run
// concurrently, each owning its private pipeline state. Panics are recovered
// so a misbehaving task cannot take the server down, and Wait lets shutdown
// drain in-flight tasks before the process exits.
type Dispatcher struct {
	wg  sync.WaitGroup
	log zerolog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Dispatch schedules fn on a new goroutine. There is no cancellation handle:
// once dispatched, a task runs to completion.
func (d *Dispatcher) Dispatch(name string, fn func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.log.Error().Interface("panic", r).Str("task", name).Msg("Background task panicked")
			}
		}()

		d.log.Debug().Str("task", name).Msg("Background task started")
		fn()
		d.log.Debug().Str("task", name).Msg("Background task finished")
	}()
}

// Wait blocks until all dispatched tasks finish or the timeout elapses.
// It reports whether the dispatcher drained fully.
func (d *Dispatcher) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		d.log.Warn().Dur("timeout", timeout).Msg("Timed out waiting for background tasks")
		return false
	}
}
