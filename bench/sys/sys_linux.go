package sys

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/weiihann/u2bench/harness"
)

// Benchmarks returns the system-call payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("sys_clock_gettime", 0, runClockGettime),
		harness.New("sys_fd_fdstat_get", 0, runFdstat),
		harness.New("sys_fd_read_0len", 0, runRead0),
		harness.New("sys_fd_write_0len", 0, runWrite0),
		harness.New("sys_open_close_stat", 16, runOpenCloseStat),
		harness.New("sys_random_get", randomBufSize, runRandomGet),
		harness.New("sys_seek_only", scratchSize, runSeekOnly),
		harness.New("sys_seek_read", scratchSize, runSeekRead),
		harness.New("sys_small_io", smallIOOps*smallIOBlock, runSmallIO),
	}
}

// errnoOf maps a syscall error to its errno value, or 0 for nil.
func errnoOf(err error) uint64 {
	if err == nil {
		return 0
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		return uint64(errno)
	}

	return 1
}

// scratchFile creates an empty file under the temp directory and opens
// it read-write. The returned cleanup closes and removes it.
func scratchFile(name string) (int, func(), error) {
	f, err := os.CreateTemp("", "u2bench_"+name+"_*.bin")
	if err != nil {
		return -1, nil, fmt.Errorf("open failed: %w", err)
	}
	path := f.Name()
	_ = f.Close()

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_TRUNC|unix.O_CLOEXEC, 0o644)
	if err != nil {
		_ = os.Remove(path)

		return -1, nil, fmt.Errorf("open failed: %w", err)
	}

	cleanup := func() {
		_ = unix.Close(fd)
		_ = os.Remove(path)
	}

	return fd, cleanup, nil
}

// writeAll writes buf to fd, retrying short writes and EINTR.
func writeAll(fd int, buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := unix.Write(fd, buf[off:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
		off += n
	}

	return nil
}

// readFull fills buf from fd, retrying short reads and EINTR, and adds
// every byte read to sum. End of file before buf is full is an error.
func readFull(fd int, buf []byte, sum *uint64) error {
	for off := 0; off < len(buf); {
		n, err := unix.Read(fd, buf[off:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("read failed: %w", io.ErrUnexpectedEOF)
		}
		for _, b := range buf[off : off+n] {
			*sum += uint64(b)
		}
		off += n
	}

	return nil
}
