package simdsort

import (
	"math/rand"
	"slices"
	"testing"
)

func testSortVec[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	var k K
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		buf := make([]T, numLanes)
		for i := range buf {
			buf[i] = T(rng.Int63n(1000))
		}
		want := slices.Clone(buf)
		slices.Sort(want)
		v := sortVec[T, V, M, K](k.Loadu(buf))
		expectLanes(t, "sortVec", lanesOf[T, V, M, K](v), want)
	}
}

func testMergeTwo[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	var k K
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		buf := make([]T, 2*numLanes)
		for i := range buf {
			buf[i] = T(rng.Int63n(1000))
		}
		want := slices.Clone(buf)
		slices.Sort(want)
		slices.Sort(buf[:numLanes])
		slices.Sort(buf[numLanes:])
		a := k.Loadu(buf)
		b := k.Loadu(buf[numLanes:])
		mergeTwo[T, V, M, K](&a, &b)
		k.Storeu(a, buf)
		k.Storeu(b, buf[numLanes:])
		if !slices.Equal(buf, want) {
			t.Fatalf("mergeTwo: got %v, want %v", buf, want)
		}
	}
}

func testMergeVecs[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	var k K
	rng := rand.New(rand.NewSource(3))
	for _, nv := range []int{4, 8, 16, 32} {
		for trial := 0; trial < 20; trial++ {
			buf := make([]T, nv*numLanes)
			for i := range buf {
				buf[i] = T(rng.Int63n(1000))
			}
			want := slices.Clone(buf)
			slices.Sort(want)
			// The merge expects two sorted runs of half the width.
			slices.Sort(buf[:len(buf)/2])
			slices.Sort(buf[len(buf)/2:])
			z := make([]V, nv)
			for i := range z {
				z[i] = k.Loadu(buf[i*numLanes:])
			}
			mergeVecs[T, V, M, K](z)
			for i := range z {
				k.Storeu(z[i], buf[i*numLanes:])
			}
			if !slices.Equal(buf, want) {
				t.Fatalf("mergeVecs(%d): got %v, want %v", nv, buf, want)
			}
		}
	}
}

func testSortSmallAllLengths[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 0; n <= baseSortSize; n++ {
		data := make([]T, n)
		for i := range data {
			data[i] = T(rng.Int63n(512))
		}
		want := slices.Clone(data)
		slices.Sort(want)
		sortSmall[T, V, M, K](data)
		if !slices.Equal(data, want) {
			t.Fatalf("sortSmall(n=%d): got %v, want %v", n, data, want)
		}
	}
}

func testSortSmallReversed[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	for _, n := range []int{8, 16, 17, 32, 64, 100, 128, 200, 256} {
		data := make([]T, n)
		for i := range data {
			data[i] = T(int64(n - i))
		}
		sortSmall[T, V, M, K](data)
		for i := range data {
			if data[i] != T(int64(i+1)) {
				t.Fatalf("sortSmall(reversed %d): index %d: got %v, want %d", n, i, data[i], i+1)
			}
		}
	}
}

func testNetwork[T Element, V, M any, K Kernel[T, V, M]](t *testing.T) {
	t.Run("SortVec", testSortVec[T, V, M, K])
	t.Run("MergeTwo", testMergeTwo[T, V, M, K])
	t.Run("MergeVecs", testMergeVecs[T, V, M, K])
	t.Run("SmallAllLengths", testSortSmallAllLengths[T, V, M, K])
	t.Run("SmallReversed", testSortSmallReversed[T, V, M, K])
}

func TestNetworkAVX512(t *testing.T) {
	t.Run("int64", testNetwork[int64, avx512Vec[int64], avx512Mask, avx512Kernel[int64]])
	t.Run("uint64", testNetwork[uint64, avx512Vec[uint64], avx512Mask, avx512Kernel[uint64]])
	t.Run("float64", testNetwork[float64, avx512Vec[float64], avx512Mask, avx512Kernel[float64]])
}

func TestNetworkAVX2(t *testing.T) {
	t.Run("int64", testNetwork[int64, avx2Vec[int64], avx2Mask, avx2Kernel[int64]])
	t.Run("float64", testNetwork[float64, avx2Vec[float64], avx2Mask, avx2Kernel[float64]])
}

func TestNetworkSIMD128(t *testing.T) {
	t.Run("int64", testNetwork[int64, wasmVec[int64], wasmMask, wasmKernel[int64]])
	t.Run("uint64", testNetwork[uint64, wasmVec[uint64], wasmMask, wasmKernel[uint64]])
}

func TestNetworkPortable(t *testing.T) {
	t.Run("int64", testNetwork[int64, portableVec[int64], portableMask, portableKernel[int64]])
	t.Run("uint64", testNetwork[uint64, portableVec[uint64], portableMask, portableKernel[uint64]])
	t.Run("float64", testNetwork[float64, portableVec[float64], portableMask, portableKernel[float64]])
}
