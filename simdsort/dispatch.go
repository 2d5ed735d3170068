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
	"os"
	"strconv"
)

// DispatchLevel identifies the back-end the sort entry points use.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector back-end; the entry points
	// defer directly to the standard library sort.
	DispatchScalar DispatchLevel = iota

	// DispatchPortable indicates the portable eight-lane reference
	// back-end.
	DispatchPortable

	// DispatchSIMD128 indicates the WASM SIMD128 back-end (four
	// 128-bit vectors per logical register).
	DispatchSIMD128

	// DispatchAVX2 indicates the AVX2 back-end (two 256-bit registers
	// per logical register).
	DispatchAVX2

	// DispatchAVX512 indicates the AVX-512 back-end (one 512-bit
	// register, 8-bit k-mask).
	DispatchAVX512
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchPortable:
		return "portable"
	case DispatchSIMD128:
		return "simd128"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// currentLevel is the back-end selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the back-end the sort entry points are using.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// HasSIMD reports whether a vector back-end matching a host CPU feature
// was selected. It is false in scalar mode and on hosts where only the
// portable reference applies.
func HasSIMD() bool {
	return currentLevel == DispatchSIMD128 || currentLevel == DispatchAVX2 || currentLevel == DispatchAVX512
}

// NoSimdEnv checks if the SIMDSORT_NO_SIMD environment variable is set.
// When set, the sort entry points use the standard library sort
// regardless of CPU capabilities. This is useful for testing and
// debugging.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDSORT_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
