package db

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/u2bench/harness"
)

func TestPayloadsReportOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every db payload")
	}

	runner := harness.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, b := range Benchmarks() {
		t.Run(b.Name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := runner.Run(context.Background(), b, harness.RunConfig{Out: &out})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out.String(), "Time: "), out.String())
			assert.Equal(t, 1, strings.Count(out.String(), "\n"))
			assert.Equal(t, b.Name, res.Name)
			assert.GreaterOrEqual(t, res.ElapsedMs, 0.0)
		})
	}
}
