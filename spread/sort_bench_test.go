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

package spread

import (
	"math/rand"
	"slices"
	"testing"
)

func generateInt32(n int) []int32 {
	rng := rand.New(rand.NewSource(1))
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(rng.Uint32())
	}
	return data
}

func generateFloat64(n int) []float64 {
	rng := rand.New(rand.NewSource(2))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64() * 1e9
	}
	return data
}

func generateStrings(n int) []string {
	rng := rand.New(rand.NewSource(3))
	data := make([]string, n)
	for i := range data {
		data[i] = randomString(rng, 16)
	}
	return data
}

// Int32 benchmarks

func BenchmarkSort_Int32_1000(b *testing.B)   { benchmarkSortInt32(b, 1000) }
func BenchmarkSort_Int32_10000(b *testing.B)  { benchmarkSortInt32(b, 10000) }
func BenchmarkSort_Int32_100000(b *testing.B) { benchmarkSortInt32(b, 100000) }

func benchmarkSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

func BenchmarkStdSort_Int32_1000(b *testing.B)   { benchmarkStdSortInt32(b, 1000) }
func BenchmarkStdSort_Int32_10000(b *testing.B)  { benchmarkStdSortInt32(b, 10000) }
func BenchmarkStdSort_Int32_100000(b *testing.B) { benchmarkStdSortInt32(b, 100000) }

func benchmarkStdSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// Float64 benchmarks

func BenchmarkSortFloats_Float64_1000(b *testing.B)   { benchmarkSortFloat64(b, 1000) }
func BenchmarkSortFloats_Float64_10000(b *testing.B)  { benchmarkSortFloat64(b, 10000) }
func BenchmarkSortFloats_Float64_100000(b *testing.B) { benchmarkSortFloat64(b, 100000) }

func benchmarkSortFloat64(b *testing.B, n int) {
	ref := generateFloat64(n)
	data := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		SortFloats(data)
	}
}

func BenchmarkStdSort_Float64_100000(b *testing.B) {
	ref := generateFloat64(100000)
	data := make([]float64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// String benchmarks

func BenchmarkSortStrings_10000(b *testing.B)  { benchmarkSortStrings(b, 10000) }
func BenchmarkSortStrings_100000(b *testing.B) { benchmarkSortStrings(b, 100000) }

func benchmarkSortStrings(b *testing.B, n int) {
	ref := generateStrings(n)
	data := make([]string, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		SortStrings(data)
	}
}

func BenchmarkStdSort_Strings_100000(b *testing.B) {
	ref := generateStrings(100000)
	data := make([]string, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
