// Package micro holds single-primitive payloads: integer and float
// arithmetic, memory traffic, dispatch and small parsers.
package micro

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns the micro payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("micro_base64_u8", 3<<20+4<<20+3<<20, runBase64),
		harness.New("micro_big_switch_i32", 0, runBigSwitch),
		harness.New("micro_bitops_i32_mix", 0, runBitopsMix),
		harness.New("micro_convert_i32_f64", 0, runConvert),
		harness.New("micro_div_sqrt_f64", 0, runDivSqrt),
		harness.New("micro_divrem_i64", 0, runDivRem),
		harness.New("micro_fnv1a_u64_fixedlen", 32*80000, runFNV1a),
		harness.New("micro_indirect_call_i32", 0, runIndirectCall),
		harness.New("micro_int128_mul_u64", 0, runInt128Mul),
		harness.New("micro_json_tokenize", 2<<20, runJSONTokenize),
		harness.New("micro_malloc_free_small", 1024*528, runMallocFree),
		harness.New("micro_memcpy_libc_u8", 8<<20, runMemcpy),
		harness.New("micro_mul_add_i32", 0, runMulAdd),
		harness.New("micro_pointer_chase_u64", chaseEntries*8, runPointerChase),
		harness.New("micro_quicksort_i32", 2*200000*4, runQuicksort),
		harness.New("micro_random_access_u32", 1<<20, runRandomAccess),
		harness.New("micro_reg_pressure_f32", 0, runRegPressureF32),
		harness.New("micro_reg_pressure_i32", 0, runRegPressure),
		harness.New("micro_rle_u8", 4<<20+8<<20, runRLE),
		harness.New("micro_trig_mix_f64", 0, runTrigMix),
		harness.New("micro_utf8_validate", 1<<20, runUTF8Validate),
	}
}
