package api

import (
	"context"
	"log/slog"
	"time"
)

// taskRunner detaches workflow execution from the inbound HTTP exchange.
// Each task gets its own context so finishing the response cannot cancel
// in-flight collaborator I/O; results travel over the response URL.
type taskRunner struct {
	timeout time.Duration
	logger  *slog.Logger
}

func (r taskRunner) run(task func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("background task panicked", "panic", rec)
			}
		}()
		task(ctx)
	}()
}
