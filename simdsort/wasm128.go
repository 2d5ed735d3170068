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

import "math/bits"

// WASM SIMD128 registers hold two 64-bit lanes, so a logical
// eight-lane vector is four v128 values. Comparison results come back
// as two-lane all-ones/all-zeros vectors; i64x2_bitmask extracts their
// sign bits, and shifting the four two-bit groups together yields the
// same 8-bit mask shape the AVX-512 back-end gets from a k register.

// wasmVec models four v128 registers of two lanes each.
type wasmVec[T Element] [4][2]T

// wasmMask is the assembled 8-bit lane bitmask.
type wasmMask = uint8

// wasmMin2 models v128.bitselect(a, b, i64x2.lt_s(a, b)).
func wasmMin2[T Element](a, b [2]T) [2]T {
	var v [2]T
	for i := range v {
		v[i] = minElem(a[i], b[i])
	}
	return v
}

// wasmMax2 models v128.bitselect(a, b, i64x2.gt_s(a, b)).
func wasmMax2[T Element](a, b [2]T) [2]T {
	var v [2]T
	for i := range v {
		v[i] = maxElem(a[i], b[i])
	}
	return v
}

// wasmBitmask2 models i64x2.bitmask of a comparison result.
func wasmBitmask2[T Element](a, b [2]T) uint8 {
	var m uint8
	for i := range a {
		if a[i] >= b[i] {
			m |= 1 << i
		}
	}
	return m
}

// wasmKernel realizes the capability set on the v128 quad layout.
type wasmKernel[T Element] struct{}

func (wasmKernel[T]) Loadu(s []T) wasmVec[T] {
	_ = s[numLanes-1]
	var v wasmVec[T]
	for i := range v {
		v[i] = [2]T{s[2*i], s[2*i+1]}
	}
	return v
}

func (wasmKernel[T]) Storeu(v wasmVec[T], s []T) {
	_ = s[numLanes-1]
	for i, p := range v {
		s[2*i] = p[0]
		s[2*i+1] = p[1]
	}
}

func (wasmKernel[T]) MaskLoadu(s []T) wasmVec[T] {
	k := wasmKernel[T]{}
	v := k.Broadcast(maxValue[T]())
	n := min(len(s), numLanes)
	for i := 0; i < n; i++ {
		v[i/2][i%2] = s[i]
	}
	return v
}

// MaskStoreu writes exactly min(len(s), 8) lanes. A whole-vector
// v128.store here would clobber bytes past the destination length, so
// the tail lanes use scalar stores.
func (wasmKernel[T]) MaskStoreu(v wasmVec[T], s []T) {
	n := min(len(s), numLanes)
	for i := 0; i < n; i++ {
		s[i] = v[i/2][i%2]
	}
}

// GatherFromIdx builds each v128 with two scalar loads; SIMD128 has no
// gather.
func (wasmKernel[T]) GatherFromIdx(idx [numLanes]int, s []T) wasmVec[T] {
	var v wasmVec[T]
	for i := range v {
		v[i] = [2]T{s[idx[2*i]], s[idx[2*i+1]]}
	}
	return v
}

func (wasmKernel[T]) GetLane(v wasmVec[T], i int) T {
	return v[i/2][i%2]
}

func (wasmKernel[T]) Broadcast(x T) wasmVec[T] {
	p := [2]T{x, x}
	return wasmVec[T]{p, p, p, p}
}

func (wasmKernel[T]) Min(a, b wasmVec[T]) wasmVec[T] {
	var v wasmVec[T]
	for i := range v {
		v[i] = wasmMin2(a[i], b[i])
	}
	return v
}

func (wasmKernel[T]) Max(a, b wasmVec[T]) wasmVec[T] {
	var v wasmVec[T]
	for i := range v {
		v[i] = wasmMax2(a[i], b[i])
	}
	return v
}

// Ge runs i64x2.ge_s / f64x2.ge per register and shifts the two-bit
// groups into one mask byte.
func (wasmKernel[T]) Ge(a, b wasmVec[T]) wasmMask {
	var m wasmMask
	for i := range a {
		m |= wasmBitmask2(a[i], b[i]) << (2 * i)
	}
	return m
}

func (wasmKernel[T]) ReduceMin(v wasmVec[T]) T {
	r := v[0][0]
	for _, p := range v {
		r = minElem(r, minElem(p[0], p[1]))
	}
	return r
}

func (wasmKernel[T]) ReduceMax(v wasmVec[T]) T {
	r := v[0][0]
	for _, p := range v {
		r = maxElem(r, maxElem(p[0], p[1]))
	}
	return r
}

func (wasmKernel[T]) Not(m wasmMask) wasmMask {
	return ^m
}

func (wasmKernel[T]) Popcount(m wasmMask) int {
	return bits.OnesCount8(m)
}

// MaskCompressStoreu walks the mask bits with per-lane extracts; there
// is no compress instruction to lean on.
func (wasmKernel[T]) MaskCompressStoreu(s []T, m wasmMask, v wasmVec[T]) {
	j := 0
	for i := 0; i < numLanes; i++ {
		if m&(1<<i) != 0 {
			s[j] = v[i/2][i%2]
			j++
		}
	}
}

// The network permutations are i8x16.shuffle patterns over register
// pairs; expressed here in lane terms.

// Shuffle1111 swaps the lanes within each register.
func (wasmKernel[T]) Shuffle1111(v wasmVec[T]) wasmVec[T] {
	var r wasmVec[T]
	for i, p := range v {
		r[i] = [2]T{p[1], p[0]}
	}
	return r
}

// Reverse4 reverses each pair of registers lane-wise.
func (wasmKernel[T]) Reverse4(v wasmVec[T]) wasmVec[T] {
	rev := func(p [2]T) [2]T { return [2]T{p[1], p[0]} }
	return wasmVec[T]{rev(v[1]), rev(v[0]), rev(v[3]), rev(v[2])}
}

// Reverse8 reverses the register order and each register's lanes.
func (wasmKernel[T]) Reverse8(v wasmVec[T]) wasmVec[T] {
	rev := func(p [2]T) [2]T { return [2]T{p[1], p[0]} }
	return wasmVec[T]{rev(v[3]), rev(v[2]), rev(v[1]), rev(v[0])}
}

// SwapPairs swaps adjacent registers.
func (wasmKernel[T]) SwapPairs(v wasmVec[T]) wasmVec[T] {
	return wasmVec[T]{v[1], v[0], v[3], v[2]}
}

// SwapHalves swaps the register pairs.
func (wasmKernel[T]) SwapHalves(v wasmVec[T]) wasmVec[T] {
	return wasmVec[T]{v[2], v[3], v[0], v[1]}
}

// BlendAA takes the second lane of each register from b.
func (wasmKernel[T]) BlendAA(a, b wasmVec[T]) wasmVec[T] {
	var r wasmVec[T]
	for i := range r {
		r[i] = [2]T{a[i][0], b[i][1]}
	}
	return r
}

// BlendCC takes every second register from b.
func (wasmKernel[T]) BlendCC(a, b wasmVec[T]) wasmVec[T] {
	return wasmVec[T]{a[0], b[1], a[2], b[3]}
}

// BlendF0 takes the upper register pair from b.
func (wasmKernel[T]) BlendF0(a, b wasmVec[T]) wasmVec[T] {
	return wasmVec[T]{a[0], a[1], b[2], b[3]}
}
