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

// sortbench times simdsort against the standard library on random
// 64-bit data and reports structured results.
//
// Usage:
//
//	sortbench [-sizes 1000,100000,1000000] [-type i64|u64|f64] [-runs 5] [-seed 42]
package main

import (
	"flag"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajroetker/go-simdsort/simdsort"
)

func main() {
	sizesFlag := flag.String("sizes", "1000,100000,1000000", "comma-separated input sizes")
	typeFlag := flag.String("type", "i64", "element type: i64, u64, or f64")
	runs := flag.Int("runs", 5, "timed runs per size; the best is reported")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		logger.Fatal("bad -sizes", zap.Error(err))
	}

	logger.Info("sortbench",
		zap.String("backend", simdsort.CurrentLevel().String()),
		zap.String("type", *typeFlag),
		zap.Int64("seed", *seed),
	)

	for _, n := range sizes {
		switch *typeFlag {
		case "i64":
			runOne(logger, n, *runs, genInt64(*seed, n), simdsort.SortInt64)
		case "u64":
			runOne(logger, n, *runs, genUint64(*seed, n), simdsort.SortUint64)
		case "f64":
			runOne(logger, n, *runs, genFloat64(*seed, n), simdsort.SortFloat64)
		default:
			logger.Fatal("bad -type", zap.String("type", *typeFlag))
		}
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func genInt64(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63()
	}
	return data
}

func genUint64(seed int64, n int) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]uint64, n)
	for i := range data {
		data[i] = rng.Uint64()
	}
	return data
}

func genFloat64(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64() * 1e6
	}
	return data
}

func runOne[T simdsort.Element](logger *zap.Logger, n, runs int, ref []T, sort func([]T)) {
	simd := time.Duration(1<<63 - 1)
	std := simd
	data := make([]T, n)
	for r := 0; r < runs; r++ {
		copy(data, ref)
		start := time.Now()
		sort(data)
		simd = min(simd, time.Since(start))
		if !slices.IsSorted(data) {
			logger.Fatal("output not sorted", zap.Int("size", n))
		}

		copy(data, ref)
		start = time.Now()
		slices.Sort(data)
		std = min(std, time.Since(start))
	}
	logger.Info("result",
		zap.Int("size", n),
		zap.Duration("simdsort", simd),
		zap.Duration("stdlib", std),
		zap.Float64("speedup", float64(std)/float64(simd)),
	)
}
