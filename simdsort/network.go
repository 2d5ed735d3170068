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

// Bitonic sorting network over one or more eight-lane vectors,
// expressed purely through the back-end capability set. The in-vector
// stages mirror the classic eight-element network; the cross-vector
// merges are the standard logarithmic-depth pattern: mirror-pair the
// vectors, run the compare-exchange ladder, then half-clean each
// vector.

// baseSortSize is the largest slice the network base case handles;
// above it the quicksort driver partitions first. 256 matches the
// thirty-two-vector merge ceiling.
const baseSortSize = 256

// maxBaseVectors covers baseSortSize elements.
const maxBaseVectors = baseSortSize / numLanes

// sortVec sorts the eight lanes of v ascending: six compare-merge
// stages, each blending lane-wise min and max through a fixed pattern.
func sortVec[T Element, V, M any, K Kernel[T, V, M]](v V) V {
	var k K
	s := k.Shuffle1111(v)
	v = k.BlendAA(k.Min(v, s), k.Max(v, s))
	s = k.Reverse4(v)
	v = k.BlendCC(k.Min(v, s), k.Max(v, s))
	s = k.Shuffle1111(v)
	v = k.BlendAA(k.Min(v, s), k.Max(v, s))
	s = k.Reverse8(v)
	v = k.BlendF0(k.Min(v, s), k.Max(v, s))
	s = k.SwapPairs(v)
	v = k.BlendCC(k.Min(v, s), k.Max(v, s))
	s = k.Shuffle1111(v)
	v = k.BlendAA(k.Min(v, s), k.Max(v, s))
	return v
}

// mergeVec is the recursive half-cleaner: it sorts any bitonic vector
// ascending in three stages.
func mergeVec[T Element, V, M any, K Kernel[T, V, M]](v V) V {
	var k K
	s := k.SwapHalves(v)
	v = k.BlendF0(k.Min(v, s), k.Max(v, s))
	s = k.SwapPairs(v)
	v = k.BlendCC(k.Min(v, s), k.Max(v, s))
	s = k.Shuffle1111(v)
	v = k.BlendAA(k.Min(v, s), k.Max(v, s))
	return v
}

// coex swaps the lane-wise min into a and max into b.
func coex[T Element, V, M any, K Kernel[T, V, M]](a, b *V) {
	var k K
	t := *a
	*a = k.Min(t, *b)
	*b = k.Max(t, *b)
}

// mergeTwo merges two sorted vectors into one sorted sixteen-lane
// sequence: compare-exchange against the reversed partner, then
// half-clean each side.
func mergeTwo[T Element, V, M any, K Kernel[T, V, M]](a, b *V) {
	var k K
	r := k.Reverse8(*b)
	lo := k.Min(*a, r)
	hi := k.Max(*a, r)
	*a = mergeVec[T, V, M, K](lo)
	*b = mergeVec[T, V, M, K](hi)
}

// mergeVecs merges the two sorted halves of z (len(z) a power of two
// >= 2, each half one ascending run across its vectors) into one sorted
// sequence laid out across z in ascending vector order.
// Vector i exchanges with the lane-mirrored vector len-1-i, the
// compare-exchange ladder halves the gap down to adjacent vectors, and
// a final half-clean per vector finishes the merge.
func mergeVecs[T Element, V, M any, K Kernel[T, V, M]](z []V) {
	var k K
	n := len(z)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		r := k.Reverse8(z[j])
		lo := k.Min(z[i], r)
		hi := k.Max(z[i], r)
		z[i] = lo
		z[j] = k.Reverse8(hi)
	}
	for gap := n / 4; gap >= 1; gap /= 2 {
		for b := 0; b < n; b += 2 * gap {
			for i := b; i < b+gap; i++ {
				coex[T, V, M, K](&z[i], &z[i+gap])
			}
		}
	}
	for i := range z {
		z[i] = mergeVec[T, V, M, K](z[i])
	}
}

// sortSmall sorts data of length [0, baseSortSize] entirely in
// registers. The slice is covered by the smallest power-of-two count
// of eight-lane chunks; complete chunks load unmasked, the partial
// tail chunk loads masked, and chunks past the end are sentinel
// broadcasts so the merging network always sees its full logical
// width.
func sortSmall[T Element, V, M any, K Kernel[T, V, M]](data []T) {
	var k K
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= numLanes {
		v := k.MaskLoadu(data)
		v = sortVec[T, V, M, K](v)
		k.MaskStoreu(v, data)
		return
	}

	nv := 2
	for nv*numLanes < n {
		nv *= 2
	}
	full := n / numLanes
	var z [maxBaseVectors]V
	for i := 0; i < nv; i++ {
		switch {
		case i < full:
			z[i] = k.Loadu(data[i*numLanes:])
		case i*numLanes < n:
			z[i] = k.MaskLoadu(data[i*numLanes:])
		default:
			z[i] = k.Broadcast(maxValue[T]())
		}
	}
	for i := 0; i*numLanes < n; i++ {
		z[i] = sortVec[T, V, M, K](z[i])
	}

	for i := 0; i < nv; i += 2 {
		mergeTwo[T, V, M, K](&z[i], &z[i+1])
	}
	for width := 4; width <= nv; width *= 2 {
		for b := 0; b < nv; b += width {
			mergeVecs[T, V, M, K](z[b : b+width])
		}
	}

	for i := 0; i < full; i++ {
		k.Storeu(z[i], data[i*numLanes:])
	}
	if full*numLanes < n {
		k.MaskStoreu(z[full], data[full*numLanes:])
	}
}
