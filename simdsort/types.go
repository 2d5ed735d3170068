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

import "math"

// numLanes is the logical vector width. Every back-end presents eight
// 64-bit lanes regardless of its physical register size.
const numLanes = 8

// Element is the constraint for sortable element types. Elements are
// always 64 bits wide.
type Element interface {
	int64 | uint64 | float64
}

// Kernel is the capability set a back-end provides for element type T.
// V is the back-end's representation of an eight-lane vector of T and M
// its representation of eight lane booleans. Back-ends are stateless;
// kernels call operations on the zero value.
//
// All operations are total on valid inputs. Loads and stores that
// violate the stated length preconditions panic via the usual slice
// bounds checks; the sort kernels establish the preconditions before
// entering the hot paths.
type Kernel[T Element, V, M any] interface {
	// Loadu reads the first 8 elements of s. Precondition: len(s) >= 8.
	Loadu(s []T) V
	// Storeu writes all 8 lanes to s. Precondition: len(s) >= 8.
	Storeu(v V, s []T)
	// MaskLoadu reads min(len(s), 8) elements into the low lanes and
	// fills the remaining lanes with the maximum value of T, so that a
	// padded lane never wins a min comparison.
	MaskLoadu(s []T) V
	// MaskStoreu writes exactly min(len(s), 8) lanes to s. Elements
	// past that point are not touched.
	MaskStoreu(v V, s []T)
	// GatherFromIdx produces the vector whose lane i is s[idx[i]].
	// All indices must be in bounds of s.
	GatherFromIdx(idx [numLanes]int, s []T) V
	// GetLane returns lane i of v, i in [0,8).
	GetLane(v V, i int) T
	// Broadcast produces the vector with every lane equal to x.
	Broadcast(x T) V

	// Min and Max are lane-wise. For float64 they follow the compare
	// and blend sequence of the underlying ISA, so lanes holding NaN
	// produce unspecified results.
	Min(a, b V) V
	Max(a, b V) V
	// Ge produces the mask whose lane i is set iff a[i] >= b[i].
	Ge(a, b V) M
	// ReduceMin and ReduceMax fold all 8 lanes.
	ReduceMin(v V) T
	ReduceMax(v V) T

	// Not complements all 8 lane booleans.
	Not(m M) M
	// Popcount counts the set lane booleans.
	Popcount(m M) int

	// MaskCompressStoreu writes the lanes of v selected by m to
	// s[0:popcount(m)], packed in ascending lane order. No element at
	// or past s[popcount(m)] is written.
	MaskCompressStoreu(s []T, m M, v V)

	// Fixed permutations used by the Bitonic network, written with
	// ascending lane indices.

	// Shuffle1111 swaps adjacent lanes: [1,0,3,2,5,4,7,6].
	Shuffle1111(v V) V
	// Reverse4 reverses each four-lane half: [3,2,1,0,7,6,5,4].
	Reverse4(v V) V
	// Reverse8 reverses all lanes: [7,6,5,4,3,2,1,0].
	Reverse8(v V) V
	// SwapPairs swaps adjacent lane pairs: [2,3,0,1,6,7,4,5].
	SwapPairs(v V) V
	// SwapHalves swaps the four-lane halves: [4,5,6,7,0,1,2,3].
	SwapHalves(v V) V

	// Fixed blends. Lane i of the result is b[i] where the constant
	// selection mask (0xAA, 0xCC, 0xF0) has bit i set, else a[i].
	BlendAA(a, b V) V
	BlendCC(a, b V) V
	BlendF0(a, b V) V
}

// maxValue returns the largest representable value of T, used as the
// sentinel for padded lanes.
func maxValue[T Element]() T {
	var v T
	switch p := any(&v).(type) {
	case *int64:
		*p = math.MaxInt64
	case *uint64:
		*p = math.MaxUint64
	case *float64:
		*p = math.Inf(1)
	}
	return v
}

// minValue returns the smallest representable value of T.
func minValue[T Element]() T {
	var v T
	switch p := any(&v).(type) {
	case *int64:
		*p = math.MinInt64
	case *uint64:
		*p = 0
	case *float64:
		*p = math.Inf(-1)
	}
	return v
}

func minElem[T Element](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxElem[T Element](a, b T) T {
	if a < b {
		return b
	}
	return a
}
