package workload

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/weiihann/u2bench/harness"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Generator: GenSplitMix64, Seed: 42, Count: 100}

	var buf1, buf2 bytes.Buffer

	gen1, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	sum1, err := gen1.Generate(&buf1)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	gen2, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	sum2, err := gen2.Generate(&buf2)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if buf1.String() != buf2.String() {
		t.Error("streams are not deterministic for same seed")
	}
	if sum1 != sum2 {
		t.Errorf("summaries differ: %+v vs %+v", sum1, sum2)
	}
}

func TestGenerateXorshiftValues(t *testing.T) {
	gen, err := NewGenerator(Config{Generator: GenXorshift32, Seed: 1, Count: 4})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := gen.Generate(&buf); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	want := []string{"0x00042021", "0x04080601", "0x9dcca8c5", "0x1255994f"}

	scanner := bufio.NewScanner(&buf)
	i := 0
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("line %d: invalid JSON: %v", i, err)
		}
		if e.Index != i {
			t.Errorf("line %d: index = %d", i, e.Index)
		}
		if e.Value != want[i] {
			t.Errorf("line %d: value = %s, want %s", i, e.Value, want[i])
		}
		i++
	}

	if i != len(want) {
		t.Errorf("got %d lines, want %d", i, len(want))
	}
}

func TestGenerateSplitMixWidth(t *testing.T) {
	gen, err := NewGenerator(Config{Generator: GenSplitMix64, Seed: 0, Count: 1})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := gen.Generate(&buf); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"0xe220a8397b1dcdaf"`) {
		t.Errorf("unexpected first value: %s", buf.String())
	}
}

func TestFingerprintMatchesLittleEndianStream(t *testing.T) {
	const count = 32

	gen, err := NewGenerator(Config{Generator: GenSplitMix64, Seed: 7, Count: count})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	var buf bytes.Buffer
	sum, err := gen.Generate(&buf)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	raw := make([]byte, 0, count*8)
	x := uint64(7)
	for i := 0; i < count; i++ {
		x = harness.SplitMix64(x)
		raw = binary.LittleEndian.AppendUint64(raw, x)
	}

	if want := xxhash.Sum64(raw); sum.Fingerprint != want {
		t.Errorf("fingerprint = %#x, want %#x", sum.Fingerprint, want)
	}
	if sum.Count != count {
		t.Errorf("count = %d, want %d", sum.Count, count)
	}
}

func TestFingerprintDiffersBySeed(t *testing.T) {
	fp := func(seed uint64) uint64 {
		gen, err := NewGenerator(Config{Generator: GenXorshift32, Seed: seed, Count: 16})
		if err != nil {
			t.Fatalf("NewGenerator failed: %v", err)
		}

		var buf bytes.Buffer
		sum, err := gen.Generate(&buf)
		if err != nil {
			t.Fatalf("generation failed: %v", err)
		}

		return sum.Fingerprint
	}

	if fp(1) == fp(2) {
		t.Error("different seeds produced the same fingerprint")
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown generator", Config{Generator: "mt19937", Seed: 1}},
		{"zero xorshift seed", Config{Generator: GenXorshift32, Seed: 0}},
		{"wide xorshift seed", Config{Generator: GenXorshift32, Seed: 1 << 32}},
		{"negative count", Config{Generator: GenSplitMix64, Count: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGenerator(tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
