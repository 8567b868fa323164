package sys

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/weiihann/u2bench/harness"
)

const randomBufSize = 8192

func runClockGettime(h *harness.Context) error {
	const iters = 200000

	var (
		ts  unix.Timespec
		acc uint64
	)

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
		acc += uint64(ts.Nsec)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// fillRandom fills buf from getrandom, retrying partial reads and EINTR.
func fillRandom(buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := unix.Getrandom(buf[off:], 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("random_get failed: %w", err)
		}
		off += n
	}

	return nil
}

func runRandomGet(h *harness.Context) error {
	// 16 MiB in total.
	const iters = 2000

	buf := make([]byte, randomBufSize)
	mask := uint32(len(buf) - 1)

	var acc uint64

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		if err := fillRandom(buf); err != nil {
			return err
		}
		idx := i * 131
		acc ^= uint64(buf[idx&mask])
		acc ^= uint64(buf[(idx+123)&mask]) << 8
		acc ^= uint64(buf[(idx+777)&mask]) << 16
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// zeroLengthIO issues iters zero-length calls of op against fd and folds
// the byte counts and errno values together.
func zeroLengthIO(fd, iters int, op func(int, []byte) (int, error)) uint64 {
	var (
		acc  uint64
		none [0]byte
	)
	for i := 0; i < iters; i++ {
		n, err := op(fd, none[:])
		acc += errnoOf(err) + uint64(max(n, 0))
	}

	return acc
}

func runWrite0(h *harness.Context) error {
	const iters = 100000

	t0 := h.Now()
	acc := zeroLengthIO(1, iters, unix.Write)
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

func runRead0(h *harness.Context) error {
	const iters = 200000

	t0 := h.Now()
	acc := zeroLengthIO(0, iters, unix.Read)
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// fdstat queries the status flags and file type of fd.
func fdstat(fd int) uint64 {
	var st unix.Stat_t

	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	acc := errnoOf(err) + uint64(max(flags, 0))

	err = unix.Fstat(fd, &st)
	acc += errnoOf(err) + uint64(st.Mode&unix.S_IFMT)

	return acc
}

func runFdstat(h *harness.Context) error {
	const iters = 200000

	var acc uint64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		acc += fdstat(1)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
