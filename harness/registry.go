package harness

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownBenchmark is returned by Lookup for unregistered names.
	ErrUnknownBenchmark = errors.New("unknown benchmark")

	// ErrDuplicateName is returned when two payloads share a name.
	ErrDuplicateName = errors.New("duplicate benchmark name")
)

// Registry is the set of payloads the CLI can run, keyed by name.
type Registry struct {
	byName map[string]Benchmark
}

// NewRegistry collects benchmark groups into one registry. Names must be
// non-empty and unique across all groups.
func NewRegistry(groups ...[]Benchmark) (*Registry, error) {
	r := &Registry{byName: make(map[string]Benchmark)}

	for _, group := range groups {
		for _, b := range group {
			if strings.TrimSpace(b.Name) == "" {
				return nil, fmt.Errorf("register benchmark: empty name")
			}
			if b.Run == nil {
				return nil, fmt.Errorf("register %s: nil run function", b.Name)
			}
			if _, ok := r.byName[b.Name]; ok {
				return nil, fmt.Errorf("register %s: %w", b.Name, ErrDuplicateName)
			}

			r.byName[b.Name] = b
		}
	}

	return r, nil
}

// Lookup returns the benchmark registered under name.
func (r *Registry) Lookup(name string) (Benchmark, error) {
	b, ok := r.byName[name]
	if !ok {
		return Benchmark{}, fmt.Errorf("%w %q", ErrUnknownBenchmark, name)
	}

	return b, nil
}

// Names returns every registered name in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// List returns the benchmarks of the given kind sorted by name. An empty
// kind selects every benchmark.
func (r *Registry) List(kind Kind) []Benchmark {
	var out []Benchmark

	for _, name := range r.Names() {
		b := r.byName[name]
		if kind != "" && b.Kind != kind {
			continue
		}

		out = append(out, b)
	}

	return out
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int {
	return len(r.byName)
}
