// Copyright 2025 go-spreadsort Authors
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

// Command spreadbench compares spreadsort against the standard library sort
// across input sizes and shapes, so the tuning constants can be re-derived
// for new hardware instead of trusting the shipped defaults.
//
// Usage:
//
//	spreadbench --sizes 1000,100000 --shapes random,sorted --reps 5
//	spreadbench --tuning tuning.hujson --verify
//
// The tuning file is JSON with comments and trailing commas permitted
// (HuJSON), for example:
//
//	{
//	    // Derived on a Zen 4 workstation, 2026-08.
//	    "minSortSize": 1500,
//	    "maxSplits": 12,
//	}
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/ajroetker/go-spreadsort/spread"
)

var (
	sizes      = pflag.IntSlice("sizes", []int{1000, 10000, 100000, 1000000}, "Input sizes to benchmark")
	shapes     = pflag.StringSlice("shapes", []string{"random", "sorted", "reverse", "equal", "dups"}, "Input shapes to benchmark")
	kinds      = pflag.StringSlice("kinds", []string{"int32", "int64", "float64", "string"}, "Element kinds to benchmark")
	reps       = pflag.Int("reps", 3, "Repetitions per measurement; the fastest is reported")
	seed       = pflag.Int64("seed", 1, "Seed for input generation")
	verify     = pflag.Bool("verify", false, "Check every spreadsort output against the standard library")
	tuningFile = pflag.String("tuning", "", "HuJSON file overriding the tuning constants")
)

// tuning mirrors the spread options that matter for benchmarking. Pointer
// fields distinguish absent keys from explicit zeroes.
type tuning struct {
	MinSortSize        *int `json:"minSortSize"`
	MaxSplits          *int `json:"maxSplits"`
	MaxFinishingSplits *int `json:"maxFinishingSplits"`
	LogMeanBinSize     *int `json:"logMeanBinSize"`
	LogMinSplitCount   *int `json:"logMinSplitCount"`
}

func (t *tuning) options() []spread.Option {
	var opts []spread.Option
	if t.MinSortSize != nil {
		opts = append(opts, spread.WithMinSortSize(*t.MinSortSize))
	}
	if t.MaxSplits != nil {
		opts = append(opts, spread.WithMaxSplits(*t.MaxSplits))
	}
	if t.MaxFinishingSplits != nil {
		opts = append(opts, spread.WithMaxFinishingSplits(*t.MaxFinishingSplits))
	}
	if t.LogMeanBinSize != nil {
		opts = append(opts, spread.WithLogMeanBinSize(*t.LogMeanBinSize))
	}
	if t.LogMinSplitCount != nil {
		opts = append(opts, spread.WithLogMinSplitCount(*t.LogMinSplitCount))
	}
	return opts
}

func loadTuning(path string) (*tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning file: %w", err)
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardizing %s: %w", path, err)
	}
	var t tuning
	if err := json.Unmarshal(standardized, &t); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &t, nil
}

func main() {
	pflag.Parse()

	var opts []spread.Option
	if *tuningFile != "" {
		t, err := loadTuning(*tuningFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = t.options()
	}

	fmt.Printf("%-8s %-8s %-10s %14s %14s %8s\n",
		"kind", "shape", "n", "spreadsort", "stdlib", "speedup")

	for _, kind := range *kinds {
		for _, shape := range *shapes {
			for _, n := range *sizes {
				if err := run(kind, shape, n, opts); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
			}
		}
	}
}

func run(kind, shape string, n int, opts []spread.Option) error {
	rng := rand.New(rand.NewSource(*seed))
	switch kind {
	case "int32":
		return bench(kind, shape, generate(rng, shape, n, func() int32 { return int32(rng.Uint32()) }),
			func(d []int32) { spread.Sort(d, opts...) })
	case "int64":
		return bench(kind, shape, generate(rng, shape, n, func() int64 { return int64(rng.Uint64()) }),
			func(d []int64) { spread.Sort(d, opts...) })
	case "float64":
		return bench(kind, shape, generate(rng, shape, n, func() float64 { return rng.NormFloat64() * 1e9 }),
			func(d []float64) { spread.SortFloats(d, opts...) })
	case "string":
		return bench(kind, shape, generate(rng, shape, n, func() string { return randomWord(rng) }),
			func(d []string) { spread.SortStrings(d, opts...) })
	}
	return fmt.Errorf("unknown kind %q", kind)
}

func generate[T int32 | int64 | float64 | string](rng *rand.Rand, shape string, n int, next func() T) []T {
	data := make([]T, n)
	switch shape {
	case "random":
		for i := range data {
			data[i] = next()
		}
	case "sorted", "reverse":
		for i := range data {
			data[i] = next()
		}
		slices.Sort(data)
		if shape == "reverse" {
			slices.Reverse(data)
		}
	case "equal":
		v := next()
		for i := range data {
			data[i] = v
		}
	case "dups":
		pool := make([]T, 16)
		for i := range pool {
			pool[i] = next()
		}
		for i := range data {
			data[i] = pool[rng.Intn(len(pool))]
		}
	}
	return data
}

func bench[T int32 | int64 | float64 | string](kind, shape string, ref []T, sort func([]T)) error {
	data := make([]T, len(ref))

	spreadTime := measure(func() {
		copy(data, ref)
		sort(data)
	})
	if *verify {
		want := slices.Clone(ref)
		slices.Sort(want)
		copy(data, ref)
		sort(data)
		// Generated inputs never contain NaN, so == comparison is exact.
		if !slices.Equal(data, want) {
			return fmt.Errorf("%s/%s n=%d: spreadsort output differs from reference", kind, shape, len(ref))
		}
	}

	stdTime := measure(func() {
		copy(data, ref)
		slices.Sort(data)
	})

	fmt.Printf("%-8s %-8s %-10d %14s %14s %7.2fx\n",
		kind, shape, len(ref), spreadTime, stdTime,
		float64(stdTime)/float64(spreadTime))
	return nil
}

func measure(fn func()) time.Duration {
	best := time.Duration(0)
	for r := 0; r < *reps; r++ {
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best
}

func randomWord(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 4+rng.Intn(12))
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
