package simdsort

import (
	"math/rand"
	"slices"
	"testing"
)

func checkPartition[T Element](t *testing.T, name string, orig, got []T, pivot T, p int, smallest, biggest T) {
	t.Helper()
	wantBelow := 0
	for _, x := range orig {
		if x < pivot {
			wantBelow++
		}
	}
	if p != wantBelow {
		t.Errorf("%s: split index %d, want %d (pivot %v)", name, p, wantBelow, pivot)
	}
	for i, x := range got {
		if i < p && !(x < pivot) {
			t.Errorf("%s: index %d: %v not below pivot %v", name, i, x, pivot)
		}
		if i >= p && x < pivot {
			t.Errorf("%s: index %d: %v below pivot %v on the high side", name, i, x, pivot)
		}
	}
	a := slices.Clone(orig)
	b := slices.Clone(got)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("%s: output is not a permutation of the input", name)
	}
	if len(orig) > 0 {
		if want := slices.Min(orig); smallest != want {
			t.Errorf("%s: smallest %v, want %v", name, smallest, want)
		}
		if want := slices.Max(orig); biggest != want {
			t.Errorf("%s: biggest %v, want %v", name, biggest, want)
		}
	}
}

func testPartition[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sizes := []int{1, 2, 7, 8, 9, 15, 16, 17, 24, 64, 100, 127, 128, 129, 200, 1000, 4096}
	for _, n := range sizes {
		for trial := 0; trial < 10; trial++ {
			orig := make([]T, n)
			for i := range orig {
				orig[i] = T(rng.Int63n(int64(n)*2 + 1))
			}
			pivot := orig[rng.Intn(n)]

			data := slices.Clone(orig)
			smallest, biggest := maxValue[T](), minValue[T]()
			p := partition[T, V, M, K](data, pivot, &smallest, &biggest)
			checkPartition(t, "partition", orig, data, pivot, p, smallest, biggest)

			data = slices.Clone(orig)
			smallest, biggest = maxValue[T](), minValue[T]()
			p = partitionUnrolled[T, V, M, K](data, pivot, &smallest, &biggest)
			checkPartition(t, "partitionUnrolled", orig, data, pivot, p, smallest, biggest)
		}
	}
}

func TestPartitionAVX512(t *testing.T) {
	t.Run("int64", testPartition[int64, avx512Vec[int64], avx512Mask, avx512Kernel[int64]])
	t.Run("uint64", testPartition[uint64, avx512Vec[uint64], avx512Mask, avx512Kernel[uint64]])
	t.Run("float64", testPartition[float64, avx512Vec[float64], avx512Mask, avx512Kernel[float64]])
}

func TestPartitionAVX2(t *testing.T) {
	t.Run("int64", testPartition[int64, avx2Vec[int64], avx2Mask, avx2Kernel[int64]])
	t.Run("float64", testPartition[float64, avx2Vec[float64], avx2Mask, avx2Kernel[float64]])
}

func TestPartitionSIMD128(t *testing.T) {
	t.Run("int64", testPartition[int64, wasmVec[int64], wasmMask, wasmKernel[int64]])
	t.Run("uint64", testPartition[uint64, wasmVec[uint64], wasmMask, wasmKernel[uint64]])
}

func TestPartitionPortable(t *testing.T) {
	t.Run("int64", testPartition[int64, portableVec[int64], portableMask, portableKernel[int64]])
	t.Run("float64", testPartition[float64, portableVec[float64], portableMask, portableKernel[float64]])
}

func TestPartitionAllEqual(t *testing.T) {
	data := make([]int64, 300)
	for i := range data {
		data[i] = 7
	}
	smallest, biggest := maxValue[int64](), minValue[int64]()
	p := partitionUnrolled[int64, portableVec[int64], portableMask, portableKernel[int64]](data, 7, &smallest, &biggest)
	if p != 0 {
		t.Errorf("all-equal: split index %d, want 0", p)
	}
	if smallest != 7 || biggest != 7 {
		t.Errorf("all-equal: extremes %d/%d, want 7/7", smallest, biggest)
	}
}
