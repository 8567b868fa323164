package workload

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Generator names accepted by Config.Generator.
const (
	GenXorshift32 = "xorshift32"
	GenSplitMix64 = "splitmix64"
)

// Entry is one line of an encoded stream.
type Entry struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// Summary describes an encoded stream.
type Summary struct {
	Generator string
	Count     int

	// Fingerprint is the xxhash64 of the stream's outputs laid out
	// little-endian at their natural width (4 or 8 bytes).
	Fingerprint uint64
}

// Config controls stream generation.
type Config struct {
	Generator string
	Seed      uint64
	Count     int
}

// Generator encodes a deterministic generator stream.
type Generator struct {
	cfg Config
}

// NewGenerator validates cfg and creates a Generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}

	switch cfg.Generator {
	case GenXorshift32:
		if cfg.Seed == 0 {
			return nil, fmt.Errorf("xorshift32 seed must be nonzero")
		}
		if cfg.Seed > math.MaxUint32 {
			return nil, fmt.Errorf("xorshift32 seed %#x exceeds 32 bits", cfg.Seed)
		}
	case GenSplitMix64:
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}

	return &Generator{cfg: cfg}, nil
}

// Generate writes the stream to w as JSONL and returns a Summary.
func (g *Generator) Generate(w io.Writer) (Summary, error) {
	enc := json.NewEncoder(w)
	digest := xxhash.New()

	summary := Summary{Generator: g.cfg.Generator}

	next, width := g.source()

	var word [8]byte

	for i := 0; i < g.cfg.Count; i++ {
		v := next()

		binary.LittleEndian.PutUint64(word[:], v)
		// xxhash.Digest.Write never fails.
		_, _ = digest.Write(word[:width])

		if err := enc.Encode(Entry{
			Index: i,
			Value: fmt.Sprintf("0x%0*x", 2*width, v),
		}); err != nil {
			return summary, fmt.Errorf("encode entry %d: %w", i, err)
		}

		summary.Count++
	}

	summary.Fingerprint = digest.Sum64()

	return summary, nil
}

func (g *Generator) source() (func() uint64, int) {
	if g.cfg.Generator == GenXorshift32 {
		x := NewXorshift(uint32(g.cfg.Seed))

		return func() uint64 { return uint64(x.Next()) }, 4
	}

	s := NewSplitMix(g.cfg.Seed)

	return s.Next, 8
}
