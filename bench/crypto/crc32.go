package crypto

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const crc32BufSize = 4 << 20

// crc32Table builds the reflected CRC-32/IEEE lookup table.
func crc32Table() *[256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			c = (c >> 1) ^ (0xedb88320 & -(c & 1))
		}
		table[i] = c
	}

	return &table
}

func crc32Update(table *[256]uint32, crc uint32, p []byte) uint32 {
	crc = ^crc
	for _, b := range p {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}

	return ^crc
}

func runCRC32(h *harness.Context) error {
	table := crc32Table()
	buf := workload.Bytes(crc32BufSize, 1)

	// 32 MiB in total.
	const iters = 8

	var crc uint32

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		crc ^= uint32(i) * 0x9e3779b9
		crc = crc32Update(table, crc, buf)
	}
	t1 := h.Now()

	h.SinkU64(uint64(crc))

	return h.ReportNs(t1 - t0)
}
