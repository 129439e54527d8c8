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

// String sorting distributes on one byte per level instead of a shifted
// integer key: bucket 0 collects strings exhausted at the current character
// offset, buckets 1..256 the strings whose byte there is b-1. Exhausted
// strings within a bucket are identical (same prefix, same length), so bucket
// 0 never recurses.

const (
	stringBins    = 257
	stringLogBins = 8 // significant bits consumed per character level
)

// SortStrings sorts a string slice in ascending byte order in place.
func SortStrings(data []string, opts ...Option) {
	o := resolve(opts)
	if len(data) < o.minSortSize {
		stringFallback(data, 0, o)
		return
	}
	stringSort(data, 0, o)
}

func stringSort(data []string, offset int, o *options) {
	var sizes [stringBins]int
	for {
		for i := range sizes {
			sizes[i] = 0
		}
		for _, s := range data {
			sizes[stringBucket(s, offset)]++
		}
		b := stringBucket(data[0], offset)
		if sizes[b] != len(data) {
			break
		}
		if b == 0 {
			return // all strings end here; they are identical
		}
		// A shared byte: advance to the next offset without a swap pass.
		offset++
	}

	cursors := make([]int, stringBins)
	pos := 0
	for u, sz := range sizes {
		cursors[u] = pos
		pos += sz
	}
	partition(data, sizes[:], cursors, func(s string) int {
		return stringBucket(s, offset)
	})

	minCount := o.minDistributionCount(stringLogBins)
	begin := sizes[0] // bucket 0 is finished
	for u := 1; u < stringBins; u++ {
		end := cursors[u]
		bin := data[begin:end:end]
		begin = end
		if len(bin) < 2 {
			continue
		}
		if len(bin) < minCount {
			stringFallback(bin, offset+1, o)
		} else {
			stringSort(bin, offset+1, o)
		}
	}
}

// stringFallback delegates a bucket to the comparison sort, comparing only
// from the shared-prefix offset on.
func stringFallback(data []string, offset int, o *options) {
	fb := fallbackFor[string](o)
	fb(data, func(a, b string) bool {
		return a[offset:] < b[offset:]
	})
}

func stringBucket(s string, offset int) int {
	if len(s) <= offset {
		return 0
	}
	return int(s[offset]) + 1
}
