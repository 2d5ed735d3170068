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

// depthBudget is the recursion allowance for n elements: floor(log2 n).
func depthBudget(n int) int {
	return bits.Len(uint(n)) - 1
}

// medianOfEight samples eight evenly spaced elements, sorts them in a
// register, and returns the middle lane. Indices are clamped so the
// stride never lands one past the end when the length divides evenly.
func medianOfEight[T Element, V, M any, K Kernel[T, V, M]](data []T) T {
	var k K
	n := len(data)
	stride := n / numLanes
	var idx [numLanes]int
	for i := range idx {
		idx[i] = min((i+1)*stride, n-1)
	}
	v := k.GatherFromIdx(idx, data)
	v = sortVec[T, V, M, K](v)
	return k.GetLane(v, 4)
}

// qsort is the recursion controller. A side whose every element equals
// the pivot-side extreme is already uniform and is not descended into;
// when the depth budget runs out the standard library finishes the
// subrange, bounding the worst case.
func qsort[T Element, V, M any, K Kernel[T, V, M]](data []T, maxIters int) {
	if maxIters <= 0 {
		slices.Sort(data)
		return
	}
	if len(data) <= baseSortSize {
		sortSmall[T, V, M, K](data)
		return
	}

	pivot := medianOfEight[T, V, M, K](data)
	smallest := maxValue[T]()
	biggest := minValue[T]()
	p := partitionUnrolled[T, V, M, K](data, pivot, &smallest, &biggest)
	if pivot != smallest {
		qsort[T, V, M, K](data[:p], maxIters-1)
	}
	if pivot != biggest {
		qsort[T, V, M, K](data[p:], maxIters-1)
	}
}
