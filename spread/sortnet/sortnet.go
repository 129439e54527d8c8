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

// Package sortnet provides fixed-size sorting networks for very small slices.
//
// A network sorts through a fixed, data-independent sequence of
// compare-exchange operations, which branch predictors handle much better
// than a data-dependent loop. The networks in networks.go are Bose-Nelson
// sequences emitted by cmd/netgen; slices longer than MaxSize fall back to
// insertion sort.
package sortnet

//go:generate go run ../../cmd/netgen -output networks.go -maxsize 8 -pkg sortnet

// cas compare-exchanges d[i] and d[j] so the smaller element under less
// lands at i.
func cas[T any](d []T, i, j int, less func(a, b T) bool) {
	if less(d[j], d[i]) {
		d[i], d[j] = d[j], d[i]
	}
}

// insertion sorts data in place; used above MaxSize.
func insertion[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
