package sys

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const (
	scratchSize  = 4096
	smallIOBlock = 64
	smallIOOps   = 100000
)

// seekSweep repositions fd iters times across the first 4 KiB and sums
// the resulting offsets.
func seekSweep(fd, iters int) (uint64, error) {
	var acc uint64
	for i := 0; i < iters; i++ {
		off := int64((uint32(i) * 97) & (scratchSize - 1))
		pos, err := unix.Seek(fd, off, io.SeekStart)
		if err != nil {
			return acc, fmt.Errorf("lseek failed: %w", err)
		}
		acc += uint64(pos)
	}

	return acc, nil
}

func runSeekOnly(h *harness.Context) error {
	const iters = 500000

	fd, cleanup, err := scratchFile("seek_only")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := writeAll(fd, workload.Pattern(scratchSize, 17, 3)); err != nil {
		return err
	}

	t0 := h.Now()
	acc, err := seekSweep(fd, iters)
	t1 := h.Now()
	if err != nil {
		return err
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// seekReads performs ops random 16-byte reads at xorshift offsets and
// sums the bytes read.
func seekReads(fd, ops int, seed uint32) (uint64, error) {
	var (
		acc uint64
		buf [16]byte
	)

	rng := workload.NewXorshift(seed)
	for i := 0; i < ops; i++ {
		off := int64(rng.Next() & uint32(scratchSize-len(buf)))
		if _, err := unix.Seek(fd, off, io.SeekStart); err != nil {
			return acc, fmt.Errorf("lseek failed: %w", err)
		}
		if err := readFull(fd, buf[:], &acc); err != nil {
			return acc, err
		}
	}

	return acc, nil
}

func runSeekRead(h *harness.Context) error {
	const ops = 200000

	fd, cleanup, err := scratchFile("seek_read")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := writeAll(fd, workload.Pattern(scratchSize, 13, 7)); err != nil {
		return err
	}

	t0 := h.Now()
	acc, err := seekReads(fd, ops, 1)
	t1 := h.Now()
	if err != nil {
		return err
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// smallIO appends ops 64-byte blocks to fd, mutating one byte of the
// block before each write, then rewinds and reads them all back. It
// returns the sum of the bytes read.
func smallIO(fd, ops int) (uint64, error) {
	buf := workload.Pattern(smallIOBlock, 17, 3)
	for i := 0; i < ops; i++ {
		buf[i&(smallIOBlock-1)] ^= byte(i)
		if err := writeAll(fd, buf); err != nil {
			return 0, err
		}
	}

	if _, err := unix.Seek(fd, 0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("lseek failed: %w", err)
	}

	var sum uint64
	for i := 0; i < ops; i++ {
		if err := readFull(fd, buf, &sum); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

func runSmallIO(h *harness.Context) error {
	fd, cleanup, err := scratchFile("small_io")
	if err != nil {
		return err
	}
	defer cleanup()

	t0 := h.Now()
	sum, err := smallIO(fd, smallIOOps)
	t1 := h.Now()
	if err != nil {
		return err
	}

	h.SinkU64(sum)

	return h.ReportNs(t1 - t0)
}

// openStatClose opens path read-only, stats it and closes it iters
// times, folding size and mode together.
func openStatClose(path string, iters int) (uint64, error) {
	var (
		acc uint64
		st  unix.Stat_t
	)
	for i := 0; i < iters; i++ {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			return acc, fmt.Errorf("open failed: %w", err)
		}
		if err := unix.Fstat(fd, &st); err != nil {
			_ = unix.Close(fd)

			return acc, fmt.Errorf("fstat failed: %w", err)
		}
		acc ^= uint64(st.Size) + uint64(st.Mode)
		_ = unix.Close(fd)
	}

	return acc, nil
}

func runOpenCloseStat(h *harness.Context) error {
	const iters = 20000

	dir, err := os.MkdirTemp("", "u2bench_openclose_*")
	if err != nil {
		return fmt.Errorf("open(create) failed: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "u2bench_openclose.tmp")
	if err := os.WriteFile(path, workload.Pattern(16, 1, 1), 0o644); err != nil {
		return fmt.Errorf("open(create) failed: %w", err)
	}

	t0 := h.Now()
	acc, err := openStatClose(path, iters)
	t1 := h.Now()
	if err != nil {
		return err
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
