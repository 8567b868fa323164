// Package db holds payloads built on in-memory index structures: a
// B-tree, a bloom filter, an open-addressing hash table and an LSD radix
// sort.
package db

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns the db payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("db_bloom_filter", bloomBits/8+250000*8, runBloomFilter),
		harness.New("db_btree_u64", 100000*8+btreeNodeHint*btreeNodeBytes, runBTree),
		harness.New("db_kv_hash", 2*(1<<18)*8+90000*8, runKVHash),
		harness.New("db_radix_sort_u64", 2*200000*8, runRadixSort),
	}
}
