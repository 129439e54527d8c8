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
	"slices"

	"github.com/ajroetker/go-spreadsort/spread/sortnet"
)

// defaultFallback is the comparison sort used when none is injected: fixed
// sorting networks for very small inputs, the standard library's
// pattern-defeating quicksort otherwise.
func defaultFallback[T any](data []T, less Less[T]) {
	if len(data) <= sortnet.MaxSize {
		sortnet.Sort(data, less)
		return
	}
	slices.SortFunc(data, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
}
