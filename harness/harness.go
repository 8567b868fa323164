package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// RunConfig holds parameters for a single payload execution.
type RunConfig struct {
	// Out receives the result line. Defaults to os.Stdout.
	Out io.Writer

	// Clock times the payload. Defaults to SystemClock.
	Clock Clock
}

// Runner executes payloads one at a time on the calling goroutine.
type Runner struct {
	Logger *slog.Logger
}

// NewRunner creates a Runner that logs through logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{Logger: logger}
}

// Run executes b and returns what it reported. The context is only
// consulted before the payload starts; a started payload always runs to
// completion. Payload errors are returned unwrapped so their diagnostic
// text reaches the user unchanged.
func (r *Runner) Run(ctx context.Context, b Benchmark, cfg RunConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run %s: %w", b.Name, err)
	}
	if b.Run == nil {
		return nil, fmt.Errorf("run %s: nil run function", b.Name)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	logger := r.Logger.With(slog.String("benchmark", b.Name))

	logger.DebugContext(ctx, "starting benchmark",
		slog.String("kind", string(b.Kind)),
		slog.Any("tags", b.Tags),
		slog.Uint64("working_set_bytes", b.WorkingSet),
	)

	sink := new(Sink)
	hc := newContext(clock, sink, out)

	wallStart := time.Now()
	err := b.Run(hc)
	wallElapsed := time.Since(wallStart)

	runtime.KeepAlive(sink)

	if err != nil {
		logger.ErrorContext(ctx, "benchmark failed",
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	if !hc.reported {
		return nil, fmt.Errorf("run %s: %w", b.Name, ErrNotReported)
	}

	logger.InfoContext(ctx, "benchmark finished",
		slog.Float64("elapsed_ms", hc.elapsedMs),
		slog.Duration("wall_time", wallElapsed),
	)

	return &Result{
		Name:      b.Name,
		Kind:      b.Kind,
		ElapsedMs: hc.elapsedMs,
		WallTime:  wallElapsed,
	}, nil
}
