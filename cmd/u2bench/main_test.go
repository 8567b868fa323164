package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/report"
	"github.com/weiihann/u2bench/workload"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := newRootCmd(logger, new(slog.LevelVar))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestRegistryClassifiesEveryPayload(t *testing.T) {
	registry, err := newRegistry()
	require.NoError(t, err)
	require.NotZero(t, registry.Len())

	for _, b := range registry.List("") {
		assert.NotEqual(t, harness.KindUnknown, b.Kind, b.Name)
		assert.Contains(t, b.Tags, string(b.Kind), b.Name)
	}
}

func TestRunPrintsOneTimeLine(t *testing.T) {
	out, err := execute(t, "run", "crypto_crc32")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Time: "), out)
	assert.True(t, strings.HasSuffix(out, " ms\n"), out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRunWritesResultJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")

	out, err := execute(t, "run", "vm_tinybytecode", "--result-json", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var result harness.Result
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "vm_tinybytecode", result.Name)
	assert.Equal(t, harness.KindControlFlow, result.Kind)
	assert.Positive(t, result.WallTime)
	assert.Contains(t, string(data), `"elapsed_ms"`)

	// The stdout line and the file carry the same reported time.
	assert.Equal(t, harness.FormatTimeMs(result.ElapsedMs)+"\n", out)
}

func TestRunUnknownPayload(t *testing.T) {
	_, err := execute(t, "run", "micro_does_not_exist")
	require.ErrorIs(t, err, harness.ErrUnknownBenchmark)
}

func TestRunRequiresName(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func TestListFiltersByKind(t *testing.T) {
	out, err := execute(t, "list", "--kind", "call_dense", "--json")
	require.NoError(t, err)

	var entries []report.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.Equal(t, harness.KindCall, e.Kind, e.Name)
	}
}

func TestListTable(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "## Benchmark Catalogue")
	assert.Contains(t, out, "| science_fft_f64 |")
}

func TestListUnknownKind(t *testing.T) {
	_, err := execute(t, "list", "--kind", "gpu_dense")
	require.Error(t, err)
}

func TestStreamXorshift(t *testing.T) {
	out, err := execute(t, "stream", "--gen", "xorshift32", "--seed", "1", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var first workload.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "0x00042021", first.Value)
}

func TestStreamRejectsZeroXorshiftSeed(t *testing.T) {
	_, err := execute(t, "stream", "--gen", "xorshift32", "--seed", "0")
	require.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "list")
	require.Error(t, err)
}
