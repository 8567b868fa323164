package sys

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func TestBenchmarksClassify(t *testing.T) {
	_, err := harness.NewRegistry(Benchmarks())
	require.NoError(t, err)

	ioBound := map[string]bool{"sys_seek_read": true, "sys_small_io": true}
	for _, b := range Benchmarks() {
		assert.Contains(t, b.Tags, "sys", b.Name)
		if ioBound[b.Name] {
			assert.Equal(t, harness.KindIO, b.Kind, b.Name)
		} else {
			assert.Equal(t, harness.KindSyscall, b.Kind, b.Name)
		}
	}
}

func TestPayloadsReportOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every sys payload")
	}

	runner := harness.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, b := range Benchmarks() {
		t.Run(b.Name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := runner.Run(context.Background(), b, harness.RunConfig{Out: &out})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out.String(), "Time: "), out.String())
			assert.Equal(t, 1, strings.Count(out.String(), "\n"))
		})
	}
}

func TestErrnoOf(t *testing.T) {
	assert.Zero(t, errnoOf(nil))
	assert.Equal(t, uint64(unix.EBADF), errnoOf(unix.EBADF))
	assert.Equal(t, uint64(1), errnoOf(io.EOF))
}

func TestScratchFileCleanup(t *testing.T) {
	fd, cleanup, err := scratchFile("test")
	require.NoError(t, err)

	var st unix.Stat_t
	require.NoError(t, unix.Fstat(fd, &st))
	assert.Zero(t, st.Size)

	path, err := os.Readlink(filepath.Join("/proc/self/fd", strconv.Itoa(fd)))
	require.NoError(t, err)

	cleanup()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "scratch file %s left behind", path)
}

func filledScratch(t *testing.T, content []byte) int {
	t.Helper()

	fd, cleanup, err := scratchFile("test")
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, writeAll(fd, content))

	return fd
}

func TestSeekSweep(t *testing.T) {
	fd := filledScratch(t, workload.Pattern(scratchSize, 17, 3))

	const iters = 10000

	var want uint64
	for i := uint32(0); i < iters; i++ {
		want += uint64((i * 97) & (scratchSize - 1))
	}

	got, err := seekSweep(fd, iters)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSeekSweepBadDescriptor(t *testing.T) {
	_, err := seekSweep(-1, 1)
	require.ErrorIs(t, err, unix.EBADF)
	assert.True(t, strings.HasPrefix(err.Error(), "lseek failed: "), err.Error())
}

func TestSeekReads(t *testing.T) {
	content := workload.Pattern(scratchSize, 13, 7)
	fd := filledScratch(t, content)

	const ops = 5000

	var want uint64
	rng := workload.NewXorshift(1)
	for i := 0; i < ops; i++ {
		off := rng.Next() & (scratchSize - 16)
		for _, b := range content[off : off+16] {
			want += uint64(b)
		}
	}

	got, err := seekReads(fd, ops, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSmallIORoundTrip(t *testing.T) {
	fd, cleanup, err := scratchFile("test")
	require.NoError(t, err)
	t.Cleanup(cleanup)

	const ops = 1000

	var want uint64
	buf := workload.Pattern(smallIOBlock, 17, 3)
	for i := 0; i < ops; i++ {
		buf[i&(smallIOBlock-1)] ^= byte(i)
		for _, b := range buf {
			want += uint64(b)
		}
	}

	got, err := smallIO(fd, ops)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var st unix.Stat_t
	require.NoError(t, unix.Fstat(fd, &st))
	assert.Equal(t, int64(ops*smallIOBlock), st.Size)
}

func TestReadFullShortFile(t *testing.T) {
	fd := filledScratch(t, []byte{1, 2, 3})

	_, err := unix.Seek(fd, 0, io.SeekStart)
	require.NoError(t, err)

	var sum uint64
	err = readFull(fd, make([]byte, 8), &sum)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "read failed: unexpected EOF", err.Error())
	assert.Equal(t, uint64(6), sum)
}

func TestOpenStatClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.tmp")
	require.NoError(t, os.WriteFile(path, workload.Pattern(16, 1, 1), 0o644))

	fi, err := os.Stat(path)
	require.NoError(t, err)

	var st unix.Stat_t
	require.NoError(t, unix.Stat(path, &st))
	step := uint64(st.Size) + uint64(st.Mode)
	assert.Equal(t, int64(16), fi.Size())

	// An even number of xors cancels out.
	got, err := openStatClose(path, 4)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = openStatClose(path, 3)
	require.NoError(t, err)
	assert.Equal(t, step, got)
}

func TestOpenStatCloseMissing(t *testing.T) {
	_, err := openStatClose(filepath.Join(t.TempDir(), "missing"), 1)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.True(t, strings.HasPrefix(err.Error(), "open failed: "), err.Error())
}

func TestZeroLengthIO(t *testing.T) {
	fd := filledScratch(t, []byte{1})

	assert.Zero(t, zeroLengthIO(fd, 100, unix.Write))
	assert.Zero(t, zeroLengthIO(fd, 100, unix.Read))
	assert.Equal(t, 10*uint64(unix.EBADF), zeroLengthIO(-1, 10, unix.Read))
}

func TestFdstatRegularFile(t *testing.T) {
	fd := filledScratch(t, []byte{1})

	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(flags)+unix.S_IFREG, fdstat(fd))
}
