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

// sorter carries one sort call's strategy and tuning through the recursion.
type sorter[T any] struct {
	shift RightShift[T]
	less  Less[T]
	fb    Fallback[T]
	opts  *options
}

// sort is the recursive bucket distribution engine. At every level the slice
// is partitioned into contiguous buckets by the top undiscriminated key bits;
// the buckets cover the slice with no overlap and no gaps, and each bucket is
// then finished by recursion, by the fallback sort, or not at all (singleton
// or fully keyed). Recursion depth is bounded by the key width, since each
// level discriminates at least one bit.
func (s *sorter[T]) sort(data []T) {
	minIdx, maxIdx, sorted := sortedOrExtremes(data, s.less)
	if sorted {
		return
	}
	minKey := s.shift(data[minIdx], 0)
	maxKey := s.shift(data[maxIdx], 0)
	if minKey == maxKey {
		// Every key bit agrees across the range; any residual order is the
		// comparator's business, so distribution has nothing left to do.
		s.fb(data, s.less)
		return
	}

	logRange := roughLog2(maxKey - minKey)
	logDiv := s.opts.logDivisor(len(data), logRange)
	divMin := s.shift(data[minIdx], uint(logDiv))
	divMax := s.shift(data[maxIdx], uint(logDiv))
	binCount := int(divMax-divMin) + 1

	// Tally bucket occupancy, then prefix sums for the bucket origins. Both
	// slices are scoped to this invocation.
	sizes := make([]int, binCount)
	for i := range data {
		sizes[int(s.shift(data[i], uint(logDiv))-divMin)]++
	}
	cursors := make([]int, binCount)
	pos := 0
	for u, sz := range sizes {
		cursors[u] = pos
		pos += sz
	}

	partition(data, sizes, cursors, func(v T) int {
		return int(s.shift(v, uint(logDiv)) - divMin)
	})

	if logDiv == 0 {
		// The pass consumed the whole remaining range: buckets are
		// single-key, so the slice is sorted.
		return
	}

	minCount := s.opts.minDistributionCount(logDiv)
	begin := 0
	for u := 0; u < binCount; u++ {
		end := cursors[u]
		bin := data[begin:end:end]
		begin = end
		if len(bin) < 2 {
			continue
		}
		if len(bin) < minCount {
			s.fb(bin, s.less)
		} else {
			s.sort(bin)
		}
	}
}

// partition swaps every element of data into its bucket's region in place.
// sizes holds each bucket's occupancy; cursors holds each bucket's first
// index on entry and each bucket's end index on return. Every swap puts one
// element into its final bucket, so the pass is linear. Relies on the
// american-flag invariant that once a bucket's region is full, no element of
// that bucket remains elsewhere: the bucket index computed for an unplaced
// element is never below the bucket being filled.
func partition[T any](data []T, sizes, cursors []int, bucket func(T) int) {
	binCount := len(sizes)
	binEnd := 0
	for u := 0; u < binCount-1; u++ {
		binEnd += sizes[u]
		for cursors[u] < binEnd {
			i := cursors[u]
			b := bucket(data[i])
			if b == u {
				cursors[u]++
				continue
			}
			data[i], data[cursors[b]] = data[cursors[b]], data[i]
			cursors[b]++
		}
	}
	// The last bucket is complete by elimination.
	cursors[binCount-1] = len(data)
}

// sortedOrExtremes scans data once, reporting whether it is already sorted
// under less and, if not, the indices of its minimum and maximum elements.
func sortedOrExtremes[T any](data []T, less Less[T]) (minIdx, maxIdx int, sorted bool) {
	i := 1
	for ; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			break
		}
	}
	if i == len(data) {
		return 0, 0, true
	}
	// The sorted prefix's extremes are its endpoints; sweep the rest.
	minIdx, maxIdx = 0, i-1
	for ; i < len(data); i++ {
		if less(data[i], data[minIdx]) {
			minIdx = i
		} else if less(data[maxIdx], data[i]) {
			maxIdx = i
		}
	}
	return minIdx, maxIdx, false
}
