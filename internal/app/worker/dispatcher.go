package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher runs fire-and-forget background tasks on tracked
// goroutines. Tasks are started after the HTTP response is already on
// the wire, so their outcome can never reach the caller; the dispatcher
// exists so that outcome at least lands in the process logs and so the
// server can drain in-flight work on shutdown.
//
// There is deliberately no queue, no concurrency cap and no retry: any
// number of tasks may be in flight at once and a failed task is
// terminal for its submission.
type Dispatcher struct {
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{baseCtx: ctx, cancel: cancel}
}

// Dispatch starts fn on its own goroutine and returns immediately.
// The task runs under the dispatcher's context, not the request's: the
// request context dies with the response, while the task keeps going
// until it finishes or shutdown drains time out.
func (d *Dispatcher) Dispatch(name string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("background task panicked", "task", name, "panic", r)
			}
		}()

		start := time.Now()
		if err := fn(d.baseCtx); err != nil {
			slog.Error("background task failed", "task", name, "duration", time.Since(start), "error", err)
			return
		}
		slog.Info("background task finished", "task", name, "duration", time.Since(start))
	}()
}

// Shutdown blocks until every in-flight task has finished or ctx
// expires. On expiry the base context is cancelled so stragglers abort
// their outbound calls.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.cancel()
		return ctx.Err()
	}
}
