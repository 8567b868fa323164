// Package report formats the payload catalogue into tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/u2bench/harness"
)

// Entry is the serializable view of a registered payload.
type Entry struct {
	Name       string       `json:"name"`
	Kind       harness.Kind `json:"kind"`
	Tags       []string     `json:"tags"`
	WorkingSet uint64       `json:"working_set_bytes"`
}

// Entries converts benchmarks to catalogue entries, preserving order.
func Entries(benchmarks []harness.Benchmark) []Entry {
	out := make([]Entry, 0, len(benchmarks))
	for _, b := range benchmarks {
		out = append(out, Entry{
			Name:       b.Name,
			Kind:       b.Kind,
			Tags:       b.Tags,
			WorkingSet: b.WorkingSet,
		})
	}

	return out
}

// Generate writes a markdown catalogue table for the given benchmarks,
// followed by a per-kind summary.
func Generate(w io.Writer, benchmarks []harness.Benchmark) error {
	if len(benchmarks) == 0 {
		return fmt.Errorf("no benchmarks to report")
	}

	// Header.
	fmt.Fprintln(w, "## Benchmark Catalogue")
	fmt.Fprintln(w)

	// Table header.
	fmt.Fprintln(w, "| Name | Kind | Tags | Working Set |")
	fmt.Fprintln(w, "|------|------|------|-------------|")

	for _, b := range benchmarks {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			b.Name,
			b.Kind,
			strings.Join(b.Tags, ", "),
			formatBytes(b.WorkingSet),
		)
	}

	fmt.Fprintln(w)

	// Summary rows.
	fmt.Fprintln(w, "| Kind | Benchmarks | Working Set |")
	fmt.Fprintln(w, "|------|------------|-------------|")

	for _, s := range summarize(benchmarks) {
		fmt.Fprintf(w, "| %s | %d | %s |\n",
			s.kind,
			s.count,
			formatBytes(s.workingSet),
		)
	}

	return nil
}

// GenerateJSON writes the catalogue as JSON to w.
func GenerateJSON(w io.Writer, benchmarks []harness.Benchmark) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Entries(benchmarks))
}

type kindSummary struct {
	kind       harness.Kind
	count      int
	workingSet uint64
}

// summarize groups benchmarks by kind in harness.Kinds order, skipping
// kinds with no members.
func summarize(benchmarks []harness.Benchmark) []kindSummary {
	byKind := make(map[harness.Kind]*kindSummary)
	for _, b := range benchmarks {
		s, ok := byKind[b.Kind]
		if !ok {
			s = &kindSummary{kind: b.Kind}
			byKind[b.Kind] = s
		}
		s.count++
		s.workingSet += b.WorkingSet
	}

	var out []kindSummary
	for _, k := range harness.Kinds() {
		if s, ok := byKind[k]; ok {
			out = append(out, *s)
		}
	}

	return out
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
