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

import "cmp"

// Sort sorts an integer slice in ascending order in place. Slices shorter
// than the minimum sort size go straight to the fallback comparison sort;
// everything else enters the distribution engine with the default key
// pipeline.
func Sort[T Integers](data []T, opts ...Option) {
	SortBy(data, IntShift[T](), opts...)
}

// SortBy sorts data in ascending order using a custom right-shift functor to
// extract key bits. The functor must be monotonic with respect to the natural
// ordering of T.
func SortBy[T cmp.Ordered](data []T, shift RightShift[T], opts ...Option) {
	SortByFunc(data, shift, func(a, b T) bool { return a < b }, opts...)
}

// SortByFunc sorts data using a custom right-shift functor and comparator.
// The comparator is used by the fallback sort and for sortedness checks, so
// it must agree with the key bits the functor extracts: less(a, b) implies
// shift(a, 0) <= shift(b, 0).
func SortByFunc[T any](data []T, shift RightShift[T], less Less[T], opts ...Option) {
	o := resolve(opts)
	fb := fallbackFor[T](o)
	if len(data) < o.minSortSize {
		fb(data, less)
		return
	}
	s := &sorter[T]{shift: shift, less: less, fb: fb, opts: o}
	s.sort(data)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
