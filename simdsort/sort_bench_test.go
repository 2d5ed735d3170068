package simdsort

import (
	"math/rand"
	"slices"
	"testing"
)

func generateInt64(n int) []int64 {
	rng := rand.New(rand.NewSource(11))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63()
	}
	return data
}

func generateUint64(n int) []uint64 {
	rng := rand.New(rand.NewSource(12))
	data := make([]uint64, n)
	for i := range data {
		data[i] = rng.Uint64()
	}
	return data
}

func generateFloat64(n int) []float64 {
	rng := rand.New(rand.NewSource(13))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64() * 1000
	}
	return data
}

func benchmarkSort[T Element](b *testing.B, ref []T, sort func([]T)) {
	data := make([]T, len(ref))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sort(data)
	}
}

func BenchmarkSort_Int64_256(b *testing.B)    { benchmarkSort(b, generateInt64(256), SortInt64) }
func BenchmarkSort_Int64_1000(b *testing.B)   { benchmarkSort(b, generateInt64(1000), SortInt64) }
func BenchmarkSort_Int64_10000(b *testing.B)  { benchmarkSort(b, generateInt64(10000), SortInt64) }
func BenchmarkSort_Int64_100000(b *testing.B) { benchmarkSort(b, generateInt64(100000), SortInt64) }
func BenchmarkSort_Int64_1M(b *testing.B)     { benchmarkSort(b, generateInt64(1<<20), SortInt64) }

func BenchmarkSort_Uint64_10000(b *testing.B) { benchmarkSort(b, generateUint64(10000), SortUint64) }

func BenchmarkSort_Float64_10000(b *testing.B) {
	benchmarkSort(b, generateFloat64(10000), SortFloat64)
}

func BenchmarkStdlib_Int64_10000(b *testing.B) {
	benchmarkSort(b, generateInt64(10000), slices.Sort[[]int64])
}

func BenchmarkStdlib_Int64_1M(b *testing.B) {
	benchmarkSort(b, generateInt64(1<<20), slices.Sort[[]int64])
}

func BenchmarkStdlib_Float64_10000(b *testing.B) {
	benchmarkSort(b, generateFloat64(10000), slices.Sort[[]float64])
}

func benchmarkPartition(b *testing.B, n int) {
	ref := generateInt64(n)
	data := make([]int64, n)
	pivot := ref[n/2]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		smallest, biggest := maxValue[int64](), minValue[int64]()
		partitionUnrolled[int64, portableVec[int64], portableMask, portableKernel[int64]](data, pivot, &smallest, &biggest)
	}
}

func BenchmarkPartition_10000(b *testing.B)  { benchmarkPartition(b, 10000) }
func BenchmarkPartition_100000(b *testing.B) { benchmarkPartition(b, 100000) }
