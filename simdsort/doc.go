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

// Package simdsort provides an in-place, unstable sort for dense slices
// of 64-bit primitives (int64, uint64, float64), built on data-parallel
// eight-lane vector kernels with runtime CPU dispatch.
//
// The algorithm follows the AVX-512 quicksort scheme: slices of up to
// 256 elements are sorted entirely in registers by a Bitonic sorting
// network; larger slices are partitioned around a median-of-eight pivot
// using a vectorized compress-store partition, then both sides recurse.
// When the recursion depth budget runs out the driver hands the
// subrange to the standard library sort.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simdsort/simdsort"
//
//	func ProcessData(data []float64) {
//	    simdsort.Sort(data) // in-place ascending sort
//	}
//
// Four back-ends realize the same eight-lane capability set: an AVX-512
// model (one 512-bit register, 8-bit k-mask), an AVX2 model (two
// 256-bit registers), a WASM SIMD128 model (four 128-bit vectors), and
// a portable reference. The dispatcher picks the best back-end for the
// host CPU at init; set SIMDSORT_NO_SIMD to force the scalar fallback.
//
// # Float64 and NaN
//
// Sorting float64 slices containing NaN is undefined: the comparison
// network requires a total order and NaN breaks it. Callers must filter
// NaNs beforehand. -0.0 and +0.0 compare equal and may appear in either
// order; +/-Inf sort to the ends as expected.
package simdsort
