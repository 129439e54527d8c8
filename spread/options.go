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

// Tuning defaults. These follow the values the algorithm's original authors
// arrived at empirically; they are exposed as options because the optimal
// settings vary with hardware and should be re-derived by benchmarking
// (cmd/spreadbench exists for that).
const (
	defaultMinSortSize        = 1000
	defaultMaxSplits          = 11
	defaultMaxFinishingSplits = defaultMaxSplits + 1
	defaultLogMeanBinSize     = 2
	defaultLogMinSplitCount   = 9
)

type options struct {
	minSortSize        int
	maxSplits          int
	maxFinishingSplits int
	logMeanBinSize     int
	logMinSplitCount   int
	fallback           any // Fallback[T] for the element type being sorted
}

// Option configures a single sort call.
//
// Options exist so the tuning constants can be adjusted without exploding the
// API surface; the zero-option call uses defaults that behave well on common
// hardware.
type Option func(*options)

// WithMinSortSize sets the slice length below which the engine hands the
// whole input straight to the fallback comparison sort. Values below 2 are
// clamped to 2.
func WithMinSortSize(n int) Option {
	return func(o *options) {
		if n < 2 {
			n = 2
		}
		o.minSortSize = n
	}
}

// WithMaxSplits sets the maximum number of key bits consumed by one
// distribution pass, bounding the bucket fan-out at 2^bits. Clamped to
// [1, 20].
func WithMaxSplits(bits int) Option {
	return func(o *options) {
		o.maxSplits = clamp(bits, 1, 20)
	}
}

// WithMaxFinishingSplits sets the bit budget for a final pass that finishes a
// sub-range in one go. Values below WithMaxSplits are raised just above it.
// Clamped to [1, 24].
func WithMaxFinishingSplits(bits int) Option {
	return func(o *options) {
		o.maxFinishingSplits = clamp(bits, 1, 24)
	}
}

// WithLogMeanBinSize sets the log2 of the bucket size a distribution pass
// aims for. Clamped to [0, 8].
func WithLogMeanBinSize(bits int) Option {
	return func(o *options) {
		o.logMeanBinSize = clamp(bits, 0, 8)
	}
}

// WithLogMinSplitCount sets the log2 of the smallest worthwhile fan-out; it
// drives the threshold below which a bucket is delegated to the fallback sort
// rather than subdivided. Clamped to [1, 16].
func WithLogMinSplitCount(bits int) Option {
	return func(o *options) {
		o.logMinSplitCount = clamp(bits, 1, 16)
	}
}

// WithFallback replaces the comparison sort used for small or sparse
// sub-ranges. The fallback's element type must match the slice being sorted;
// a mismatch panics on first use.
func WithFallback[T any](fb Fallback[T]) Option {
	return func(o *options) {
		if fb == nil {
			return
		}
		o.fallback = fb
	}
}

func resolve(opts []Option) *options {
	o := options{
		minSortSize:        defaultMinSortSize,
		maxSplits:          defaultMaxSplits,
		maxFinishingSplits: defaultMaxFinishingSplits,
		logMeanBinSize:     defaultLogMeanBinSize,
		logMinSplitCount:   defaultLogMinSplitCount,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxFinishingSplits < o.maxSplits {
		o.maxFinishingSplits = o.maxSplits + 1
	}
	return &o
}

func fallbackFor[T any](o *options) Fallback[T] {
	if o.fallback == nil {
		return defaultFallback[T]
	}
	fb, ok := o.fallback.(Fallback[T])
	if !ok {
		panic("spread: WithFallback element type does not match the slice being sorted")
	}
	return fb
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
