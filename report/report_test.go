package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/weiihann/u2bench/harness"
)

func noop(*harness.Context) error { return nil }

func catalogue() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("crypto_sha256", 64, noop),
		harness.New("db_bloom_filter", 2*1024*1024, noop),
		harness.New("db_radix_sort_u64", 1024*1024, noop),
		harness.New("sys_clock_gettime", 0, noop),
	}
}

func TestGenerateCatalogue(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, catalogue()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"## Benchmark Catalogue",
		"| crypto_sha256 | compute_dense | compute_dense, crypto, int_dense | 64 B |",
		"| sys_clock_gettime | syscall_dense |",
		"| memory_dense | 2 | 3 MB |",
		"| compute_dense | 1 | 64 B |",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}

	if strings.Contains(output, "| unknown |") {
		t.Error("empty kinds should not be summarized")
	}
}

func TestSummaryOrder(t *testing.T) {
	got := summarize(catalogue())

	want := []harness.Kind{harness.KindCompute, harness.KindMemory, harness.KindSyscall}
	if len(got) != len(want) {
		t.Fatalf("got %d kinds, want %d", len(got), len(want))
	}

	for i, k := range want {
		if got[i].kind != k {
			t.Errorf("summary[%d] = %s, want %s", i, got[i].kind, k)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, nil)
	if err == nil {
		t.Error("expected error for empty catalogue")
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateJSON(&buf, catalogue()[:1]); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed []Entry
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(parsed))
	}
	if parsed[0].Name != "crypto_sha256" {
		t.Errorf("name = %q, want crypto_sha256", parsed[0].Name)
	}
	if parsed[0].Kind != harness.KindCompute {
		t.Errorf("kind = %q, want compute_dense", parsed[0].Kind)
	}
	if parsed[0].WorkingSet != 64 {
		t.Errorf("working set = %d, want 64", parsed[0].WorkingSet)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
