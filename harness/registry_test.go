package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func noop(h *Context) error { return h.ReportNs(0) }

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(
		[]Benchmark{New("crypto_a", 0, noop), New("micro_b_u8", 0, noop)},
		[]Benchmark{New("db_c", 0, noop)},
	)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	b, err := r.Lookup("db_c")
	require.NoError(t, err)
	require.Equal(t, KindMemory, b.Kind)

	_, err = r.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownBenchmark)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		[]Benchmark{New("crypto_a", 0, noop)},
		[]Benchmark{New("crypto_a", 0, noop)},
	)
	require.True(t, errors.Is(err, ErrDuplicateName), "err = %v", err)
}

func TestRegistryRejectsEmptyAndNil(t *testing.T) {
	_, err := NewRegistry([]Benchmark{New(" ", 0, noop)})
	require.Error(t, err)

	_, err = NewRegistry([]Benchmark{{Name: "crypto_x"}})
	require.Error(t, err)
}

func TestRegistryListByKind(t *testing.T) {
	r, err := NewRegistry([]Benchmark{
		New("science_sieve_i32", 0, noop),
		New("crypto_z", 0, noop),
		New("crypto_a", 0, noop),
		New("db_c", 0, noop),
	})
	require.NoError(t, err)

	require.Equal(t, []string{"crypto_a", "crypto_z", "db_c", "science_sieve_i32"}, r.Names())

	var names []string
	for _, b := range r.List(KindCompute) {
		names = append(names, b.Name)
	}
	require.Equal(t, []string{"crypto_a", "crypto_z"}, names)
	require.Len(t, r.List(""), 4)
	require.Empty(t, r.List(KindIO))
}
