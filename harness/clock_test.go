package harness

import (
	"errors"
	"testing"
)

func TestSystemClockMonotonic(t *testing.T) {
	c := SystemClock()

	prev := c.Now()
	for i := 0; i < 10_000; i++ {
		now := c.Now()
		if now < prev {
			t.Fatalf("clock went backwards: %d after %d", now, prev)
		}
		prev = now
	}
}

func TestClockFailsSoft(t *testing.T) {
	c := NewClock(func() (uint64, error) {
		return 42, errors.New("clock unavailable")
	})

	start := c.Now()
	end := c.Now()

	if start != 0 || end != 0 {
		t.Errorf("failed reads = (%d, %d), want (0, 0)", start, end)
	}
	if end-start != 0 {
		t.Errorf("elapsed = %d, want 0", end-start)
	}
}

func TestClockPassesThrough(t *testing.T) {
	var ticks uint64
	c := NewClock(func() (uint64, error) {
		ticks += 5

		return ticks, nil
	})

	if got := c.Now(); got != 5 {
		t.Errorf("first read = %d, want 5", got)
	}
	if got := c.Now(); got != 10 {
		t.Errorf("second read = %d, want 10", got)
	}
}
