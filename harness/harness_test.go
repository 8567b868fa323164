package harness

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(readings ...uint64) Clock {
	i := 0

	return NewClock(func() (uint64, error) {
		v := readings[i%len(readings)]
		i++

		return v, nil
	})
}

func TestRunWritesOneLine(t *testing.T) {
	b := New("micro_test_u64", 0, func(h *Context) error {
		t0 := h.Now()
		var acc uint64
		for i := uint64(0); i < 100; i++ {
			acc += i
		}
		t1 := h.Now()
		h.SinkU64(acc)

		return h.ReportNs(t1 - t0)
	})

	var out bytes.Buffer
	runner := NewRunner(discardLogger())

	result, err := runner.Run(context.Background(), b, RunConfig{
		Out:   &out,
		Clock: fixedClock(1000, 1235567),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := out.String(), "Time: 1.235 ms\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if result.Name != "micro_test_u64" {
		t.Errorf("name = %q, want micro_test_u64", result.Name)
	}
	if result.ElapsedMs != 1.234567 {
		t.Errorf("elapsed_ms = %v, want 1.234567", result.ElapsedMs)
	}
	if result.Kind != KindCompute {
		t.Errorf("kind = %q, want %q", result.Kind, KindCompute)
	}
}

func TestRunReportMs(t *testing.T) {
	b := New("science_test_f64", 0, func(h *Context) error {
		h.SinkF64(1.0)

		return h.ReportMs(0.5)
	})

	var out bytes.Buffer
	if _, err := NewRunner(discardLogger()).Run(
		context.Background(), b, RunConfig{Out: &out},
	); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := out.String(); got != "Time: 0.500 ms\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunNotReported(t *testing.T) {
	b := New("micro_silent", 0, func(*Context) error { return nil })

	_, err := NewRunner(discardLogger()).Run(
		context.Background(), b, RunConfig{Out: io.Discard},
	)
	if !errors.Is(err, ErrNotReported) {
		t.Errorf("err = %v, want ErrNotReported", err)
	}
}

func TestRunReportedTwice(t *testing.T) {
	b := New("micro_twice", 0, func(h *Context) error {
		if err := h.ReportNs(1); err != nil {
			return err
		}

		return h.ReportNs(2)
	})

	var out bytes.Buffer
	_, err := NewRunner(discardLogger()).Run(
		context.Background(), b, RunConfig{Out: &out},
	)
	if !errors.Is(err, ErrReportedTwice) {
		t.Errorf("err = %v, want ErrReportedTwice", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Errorf("wrote %d lines, want 1", n)
	}
}

func TestRunPayloadErrorPassesThrough(t *testing.T) {
	diag := errors.New("open failed: permission denied")
	b := New("sys_fail", 0, func(*Context) error { return diag })

	var out bytes.Buffer
	_, err := NewRunner(discardLogger()).Run(
		context.Background(), b, RunConfig{Out: &out},
	)
	if err != diag {
		t.Errorf("err = %v, want the payload's own error", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	b := New("micro_never", 0, func(h *Context) error {
		ran = true

		return h.ReportNs(0)
	})

	_, err := NewRunner(discardLogger()).Run(ctx, b, RunConfig{Out: io.Discard})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("payload ran after cancellation")
	}
}

func TestRunZeroClockFallback(t *testing.T) {
	b := New("micro_zero_clock", 0, func(h *Context) error {
		t0 := h.Now()
		t1 := h.Now()

		return h.ReportNs(t1 - t0)
	})

	var out bytes.Buffer
	_, err := NewRunner(discardLogger()).Run(context.Background(), b, RunConfig{
		Out: &out,
		Clock: NewClock(func() (uint64, error) {
			return 0, errors.New("no clock")
		}),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := out.String(); got != "Time: 0.000 ms\n" {
		t.Errorf("output = %q", got)
	}
}
