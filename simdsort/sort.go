// Copyright 2025 go-simdsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simdsort

import (
	"math/bits"
	"slices"
)

// Sort sorts data in place, ascending, using the back-end selected at
// init. The sort is unstable. For float64, data must not contain NaN.
func Sort[T Element](data []T) {
	if len(data) <= 1 {
		return
	}
	depth := depthBudget(len(data))
	switch currentLevel {
	case DispatchAVX512:
		qsort[T, avx512Vec[T], avx512Mask, avx512Kernel[T]](data, depth)
	case DispatchAVX2:
		qsort[T, avx2Vec[T], avx2Mask, avx2Kernel[T]](data, depth)
	case DispatchSIMD128:
		qsort[T, wasmVec[T], wasmMask, wasmKernel[T]](data, depth)
	case DispatchPortable:
		qsort[T, portableVec[T], portableMask, portableKernel[T]](data, depth)
	default:
		slices.Sort(data)
	}
}

// SortInt64 sorts data in place, ascending.
func SortInt64(data []int64) {
	Sort(data)
}

// SortUint64 sorts data in place, ascending.
func SortUint64(data []uint64) {
	Sort(data)
}

// SortFloat64 sorts data in place, ascending. Behavior is undefined if
// data contains NaN.
func SortFloat64(data []float64) {
	Sort(data)
}

// maskFromBits materializes a back-end mask from an 8-bit pattern by
// comparing an indicator vector against a broadcast one. Back-end
// masks have no public constructor; this keeps the capability set
// closed.
func maskFromBits[T Element, V, M any, K Kernel[T, V, M]](mask uint8) M {
	var k K
	var buf [numLanes]T
	for i := range buf {
		if mask&(1<<i) != 0 {
			buf[i] = 1
		}
	}
	return k.Ge(k.Loadu(buf[:]), k.Broadcast(1))
}

func compressStore[T Element, V, M any, K Kernel[T, V, M]](dst []T, mask uint8, src []T) int {
	var k K
	m := maskFromBits[T, V, M, K](mask)
	k.MaskCompressStoreu(dst, m, k.Loadu(src))
	return bits.OnesCount8(mask)
}

// CompressStore writes the elements among src[0:8] selected by mask
// (bit i selects src[i]) consecutively into dst, preserving order, and
// returns the number written. No element of dst at or past that count
// is modified. Preconditions: len(src) >= 8 and len(dst) >=
// popcount(mask).
func CompressStore[T Element](dst []T, mask uint8, src []T) int {
	switch currentLevel {
	case DispatchAVX512:
		return compressStore[T, avx512Vec[T], avx512Mask, avx512Kernel[T]](dst, mask, src)
	case DispatchAVX2:
		return compressStore[T, avx2Vec[T], avx2Mask, avx2Kernel[T]](dst, mask, src)
	case DispatchSIMD128:
		return compressStore[T, wasmVec[T], wasmMask, wasmKernel[T]](dst, mask, src)
	default:
		_ = src[numLanes-1]
		j := 0
		for i := 0; i < numLanes; i++ {
			if mask&(1<<i) != 0 {
				dst[j] = src[i]
				j++
			}
		}
		return j
	}
}
