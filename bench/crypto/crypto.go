// Package crypto holds payloads that time cryptographic hash and cipher
// rounds. Each kernel is a plain single-block primitive; there is no
// padding, streaming or key management.
package crypto

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns the crypto payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("crypto_aes128", 176+16, runAES128),
		harness.New("crypto_blake2b", 8*8+16*8, runBlake2b),
		harness.New("crypto_blake2s", 8*4+16*4, runBlake2s),
		harness.New("crypto_chacha20", 2*16*4, runChaCha20),
		harness.New("crypto_crc32", crc32BufSize+256*4, runCRC32),
		harness.New("crypto_keccakf1600", 25*8, runKeccakF1600),
		harness.New("crypto_sha256", 8*4+16*4, runSHA256),
		harness.New("crypto_siphash24", 0, runSipHash24),
	}
}
