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

type record struct {
	id   uint32
	name string
}

// TestSortByFuncStructKey sorts records on a member without materializing a
// full key slice.
func TestSortByFuncStructKey(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	data := make([]record, 10000)
	for i := range data {
		data[i] = record{id: rng.Uint32(), name: "r"}
	}

	SortByFunc(data,
		func(r record, offset uint) uint64 { return Key(r.id) >> offset },
		func(a, b record) bool { return a.id < b.id },
		WithMinSortSize(2))

	for i := 1; i < len(data); i++ {
		if data[i].id < data[i-1].id {
			t.Fatalf("records out of order at %d: %d after %d", i, data[i].id, data[i-1].id)
		}
	}
}

// TestSortByDescending inverts the key bits and the comparator together to
// sort in descending order.
func TestSortByDescending(t *testing.T) {
	rng := rand.New(rand.NewSource(59))
	data := make([]uint32, 20000)
	for i := range data {
		data[i] = rng.Uint32()
	}
	want := slices.Clone(data)
	slices.SortFunc(want, func(a, b uint32) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	SortByFunc(data,
		func(v uint32, offset uint) uint64 { return (^Key(v) & (1<<32 - 1)) >> offset },
		func(a, b uint32) bool { return a > b })

	if !slices.Equal(data, want) {
		t.Errorf("descending sort mismatch")
	}
}

// TestSortByConstantKey: a functor with zero key range forces the engine to
// hand everything to the comparison sort.
func TestSortByConstantKey(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	data := make([]int32, 5000)
	for i := range data {
		data[i] = int32(rng.Uint32())
	}
	want := slices.Clone(data)
	slices.Sort(want)

	SortByFunc(data,
		func(int32, uint) uint64 { return 0 },
		func(a, b int32) bool { return a < b },
		WithMinSortSize(2))

	if !slices.Equal(data, want) {
		t.Errorf("constant-key sort mismatch")
	}
}

// TestSortByDefaultShiftEquivalence: SortBy with the default functor must
// order exactly as Sort does.
func TestSortByDefaultShiftEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(67))
	a := make([]int64, 20000)
	for i := range a {
		a[i] = int64(rng.Uint64())
	}
	b := slices.Clone(a)

	Sort(a, WithMinSortSize(2))
	SortBy(b, IntShift[int64](), WithMinSortSize(2))

	if !slices.Equal(a, b) {
		t.Errorf("SortBy(IntShift) differs from Sort")
	}
}
