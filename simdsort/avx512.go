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

// avx512Vec models one 512-bit register holding eight 64-bit lanes.
type avx512Vec[T Element] [numLanes]T

// avx512Mask models an 8-bit k-mask register, one bit per lane.
type avx512Mask = uint8

// avx512Kernel realizes the capability set the way the AVX-512
// back-end does: every operation maps to a single whole-register
// instruction and masks live in k registers. Each method states the
// intrinsic it models.
type avx512Kernel[T Element] struct{}

// Loadu models vmovdqu64 / vmovupd.
func (avx512Kernel[T]) Loadu(s []T) avx512Vec[T] {
	var v avx512Vec[T]
	copy(v[:], s[:numLanes])
	return v
}

// Storeu models vmovdqu64 / vmovupd.
func (avx512Kernel[T]) Storeu(v avx512Vec[T], s []T) {
	copy(s[:numLanes], v[:])
}

// MaskLoadu models a broadcast of the sentinel merged with a k-masked
// vmovdqu64.
func (avx512Kernel[T]) MaskLoadu(s []T) avx512Vec[T] {
	sentinel := maxValue[T]()
	v := avx512Vec[T]{sentinel, sentinel, sentinel, sentinel, sentinel, sentinel, sentinel, sentinel}
	n := min(len(s), numLanes)
	copy(v[:n], s[:n])
	return v
}

// MaskStoreu models a k-masked vmovdqu64: exactly the selected lanes
// reach memory.
func (avx512Kernel[T]) MaskStoreu(v avx512Vec[T], s []T) {
	n := min(len(s), numLanes)
	copy(s[:n], v[:n])
}

// GatherFromIdx models vpgatherqq / vgatherqpd.
func (avx512Kernel[T]) GatherFromIdx(idx [numLanes]int, s []T) avx512Vec[T] {
	var v avx512Vec[T]
	for i, j := range idx {
		v[i] = s[j]
	}
	return v
}

func (avx512Kernel[T]) GetLane(v avx512Vec[T], i int) T {
	return v[i]
}

// Broadcast models vpbroadcastq.
func (avx512Kernel[T]) Broadcast(x T) avx512Vec[T] {
	return avx512Vec[T]{x, x, x, x, x, x, x, x}
}

// Min models vpminsq / vpminuq / vminpd.
func (avx512Kernel[T]) Min(a, b avx512Vec[T]) avx512Vec[T] {
	var v avx512Vec[T]
	for i := range v {
		v[i] = minElem(a[i], b[i])
	}
	return v
}

// Max models vpmaxsq / vpmaxuq / vmaxpd.
func (avx512Kernel[T]) Max(a, b avx512Vec[T]) avx512Vec[T] {
	var v avx512Vec[T]
	for i := range v {
		v[i] = maxElem(a[i], b[i])
	}
	return v
}

// Ge models vpcmpq / vcmppd with the NLT predicate, producing a k-mask.
func (avx512Kernel[T]) Ge(a, b avx512Vec[T]) avx512Mask {
	var m avx512Mask
	for i := range a {
		if a[i] >= b[i] {
			m |= 1 << i
		}
	}
	return m
}

func (avx512Kernel[T]) ReduceMin(v avx512Vec[T]) T {
	r := v[0]
	for _, x := range v[1:] {
		r = minElem(r, x)
	}
	return r
}

func (avx512Kernel[T]) ReduceMax(v avx512Vec[T]) T {
	r := v[0]
	for _, x := range v[1:] {
		r = maxElem(r, x)
	}
	return r
}

// Not models knotb.
func (avx512Kernel[T]) Not(m avx512Mask) avx512Mask {
	return ^m
}

func (avx512Kernel[T]) Popcount(m avx512Mask) int {
	return bits.OnesCount8(m)
}

// MaskCompressStoreu models vpcompressq / vcompresspd with a memory
// destination: the selected lanes are packed to the front and only
// popcount(m) elements are written.
func (avx512Kernel[T]) MaskCompressStoreu(s []T, m avx512Mask, v avx512Vec[T]) {
	j := 0
	for i := range v {
		if m&(1<<i) != 0 {
			s[j] = v[i]
			j++
		}
	}
}

// The fixed network permutations are single vpermq / vshufpd ops on a
// 512-bit register.

func (avx512Kernel[T]) Shuffle1111(v avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{v[1], v[0], v[3], v[2], v[5], v[4], v[7], v[6]}
}

func (avx512Kernel[T]) Reverse4(v avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{v[3], v[2], v[1], v[0], v[7], v[6], v[5], v[4]}
}

func (avx512Kernel[T]) Reverse8(v avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0]}
}

func (avx512Kernel[T]) SwapPairs(v avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{v[2], v[3], v[0], v[1], v[6], v[7], v[4], v[5]}
}

func (avx512Kernel[T]) SwapHalves(v avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{v[4], v[5], v[6], v[7], v[0], v[1], v[2], v[3]}
}

// The fixed blends are vpblendmq with immediate k-masks.

func (avx512Kernel[T]) BlendAA(a, b avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{a[0], b[1], a[2], b[3], a[4], b[5], a[6], b[7]}
}

func (avx512Kernel[T]) BlendCC(a, b avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{a[0], a[1], b[2], b[3], a[4], a[5], b[6], b[7]}
}

func (avx512Kernel[T]) BlendF0(a, b avx512Vec[T]) avx512Vec[T] {
	return avx512Vec[T]{a[0], a[1], a[2], a[3], b[4], b[5], b[6], b[7]}
}
