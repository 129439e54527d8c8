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

package main

// boseNelson returns the compare-exchange pairs of the Bose-Nelson sorting
// network for n elements, in application order. Bose-Nelson is not optimal in
// comparator count for every n, but it is simple, correct for all n, and
// within one or two comparators of the known optima up to n = 8.
func boseNelson(n int) [][2]int {
	var pairs [][2]int

	// merge emits the comparators that merge two adjacent sorted runs:
	// x elements starting at i and y elements starting at j.
	var merge func(i, x, j, y int)
	merge = func(i, x, j, y int) {
		switch {
		case x == 1 && y == 1:
			pairs = append(pairs, [2]int{i, j})
		case x == 1 && y == 2:
			pairs = append(pairs, [2]int{i, j + 1})
			pairs = append(pairs, [2]int{i, j})
		case x == 2 && y == 1:
			pairs = append(pairs, [2]int{i, j})
			pairs = append(pairs, [2]int{i + 1, j})
		default:
			a := x / 2
			b := y / 2
			if x%2 == 0 {
				b = (y + 1) / 2
			}
			merge(i, a, j, b)
			merge(i+a, x-a, j+b, y-b)
			merge(i+a, x-a, j, b)
		}
	}

	// sort emits the comparators that sort m elements starting at i.
	var sort func(i, m int)
	sort = func(i, m int) {
		if m <= 1 {
			return
		}
		a := m / 2
		sort(i, a)
		sort(i+a, m-a)
		merge(i, a, i+a, m-a)
	}

	sort(0, n)
	return pairs
}
