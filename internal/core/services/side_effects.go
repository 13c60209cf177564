package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/middleware"
)

// DefaultSideEffectTimeout bounds how long a mutation waits for its trail writes.
const DefaultSideEffectTimeout = 5 * time.Second

// sideEffects runs trail writes that follow a committed ledger mutation. Each task runs
// on its own goroutine with a context detached from request cancellation, so one slow
// or failing writer never holds up or cancels the others.
type sideEffects struct {
	timeout time.Duration
}

func newSideEffects(timeout time.Duration) *sideEffects {
	if timeout <= 0 {
		timeout = DefaultSideEffectTimeout
	}
	return &sideEffects{timeout: timeout}
}

// Run starts every task and waits for them up to the configured timeout.
// Tasks still running after that keep going in the background.
func (se *sideEffects) Run(ctx context.Context, tasks ...func(context.Context)) {
	if len(tasks) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task func(context.Context)) {
			defer wg.Done()
			task(detached)
		}(task)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(se.timeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		middleware.GetLoggerFromCtx(ctx).Warn("Trail writes still running after timeout; continuing in background",
			slog.Duration("timeout", se.timeout))
	}
}
