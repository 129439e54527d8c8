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
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestSortFloatsBasic(t *testing.T) {
	data := []float64{3.0, 1.0, 2.0}
	SortFloats(data)
	want := []float64{1.0, 2.0, 3.0}
	if !slices.Equal(data, want) {
		t.Errorf("SortFloats = %v, want %v", data, want)
	}
}

// TestSortFloatsZeros: -0.0 and +0.0 are equal under the ordering; their
// relative order is unspecified, so compare with ==, which identifies them.
func TestSortFloatsZeros(t *testing.T) {
	data := []float64{-1.5, 0.0, math.Copysign(0, -1), 2.5, -3.0}
	SortFloats(data, WithMinSortSize(2))
	want := []float64{-3.0, -1.5, 0.0, 0.0, 2.5}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("SortFloats = %v, want %v (zeros in either order)", data, want)
		}
	}
}

// TestSortFloatsAllEqual: 50 identical values, no reordering, no crash
// despite a zero key range at every level.
func TestSortFloatsAllEqual(t *testing.T) {
	data := make([]float32, 50)
	for i := range data {
		data[i] = 1.25
	}
	SortFloats(data, WithMinSortSize(2))
	for i, v := range data {
		if v != 1.25 {
			t.Fatalf("data[%d] = %v, want 1.25", i, v)
		}
	}
}

// TestSortFloatsNaN: a NaN among 1000 otherwise-sorted floats must not
// crash, corrupt bit patterns, or disturb the pairwise order of the rest.
func TestSortFloatsNaN(t *testing.T) {
	data := make([]float64, 0, 1001)
	for i := 0; i < 1000; i++ {
		data = append(data, float64(i)-500)
	}
	data = slices.Insert(data, 500, math.NaN())

	before := make(map[uint64]int)
	for _, v := range data {
		before[math.Float64bits(v)]++
	}

	SortFloats(data, WithMinSortSize(2))

	after := make(map[uint64]int)
	for _, v := range data {
		after[math.Float64bits(v)]++
	}
	if len(before) != len(after) {
		t.Fatalf("bit-pattern multiset changed")
	}
	for bits, n := range before {
		if after[bits] != n {
			t.Fatalf("bit pattern %#x: count %d before, %d after", bits, n, after[bits])
		}
	}

	// All non-NaN values must be pairwise ordered.
	var prev float64
	seen := false
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if seen && v < prev {
			t.Fatalf("non-NaN values out of order: %v after %v", v, prev)
		}
		prev, seen = v, true
	}
}

func TestSortFloatsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for _, n := range []int{0, 1, 10, 999, 1000, 50000} {
		data := make([]float64, n)
		for i := range data {
			data[i] = (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(60)-30))
		}
		want := slices.Clone(data)
		slices.Sort(want)
		SortFloats(data)
		if !slices.Equal(data, want) {
			t.Fatalf("n=%d: float sort mismatch", n)
		}
	}
}

func TestSortFloats32Random(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	data := make([]float32, 20000)
	for i := range data {
		data[i] = float32(rng.NormFloat64() * 1e6)
	}
	want := slices.Clone(data)
	slices.Sort(want)
	SortFloats(data, WithMinSortSize(2))
	if !slices.Equal(data, want) {
		t.Errorf("float32 sort mismatch")
	}
}

// TestFloatKeyMonotonic: for all non-NaN a < b, key(a) < key(b); equal
// values (including the two zeros) share a key.
func TestFloatKeyMonotonic(t *testing.T) {
	special := []float64{
		math.Inf(-1), -math.MaxFloat64, -1e300, -2.5, -1.0, -math.SmallestNonzeroFloat64,
		math.Copysign(0, -1), 0, math.SmallestNonzeroFloat64, 1.0, 2.5, 1e300,
		math.MaxFloat64, math.Inf(1),
	}
	rng := rand.New(rand.NewSource(47))
	values := slices.Clone(special)
	for i := 0; i < 500; i++ {
		values = append(values, rng.NormFloat64()*math.Pow(10, float64(rng.Intn(40)-20)))
	}

	for _, a := range values {
		for _, b := range values {
			ka, kb := FloatKey(a), FloatKey(b)
			switch {
			case a < b:
				if ka >= kb {
					t.Fatalf("key(%v) = %#x not below key(%v) = %#x", a, ka, b, kb)
				}
			case a == b:
				if ka != kb {
					t.Fatalf("equal values %v, %v have keys %#x, %#x", a, b, ka, kb)
				}
			}
		}
	}
}

func TestFloatKey32Monotonic(t *testing.T) {
	values := []float32{
		float32(math.Inf(-1)), -math.MaxFloat32, -7.5, -0.25, float32(math.Copysign(0, -1)),
		0, 0.25, 7.5, math.MaxFloat32, float32(math.Inf(1)),
	}
	for i := 1; i < len(values); i++ {
		a, b := values[i-1], values[i]
		ka, kb := FloatKey(a), FloatKey(b)
		if a < b && ka >= kb {
			t.Errorf("key(%v) = %#x not below key(%v) = %#x", a, ka, b, kb)
		}
		if a == b && ka != kb {
			t.Errorf("equal values %v, %v have different keys", a, b)
		}
	}
}
