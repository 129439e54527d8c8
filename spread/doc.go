// Package spread provides spreadsort, a hybrid distribution/comparison sort
// for slices of integers, floats and strings.
//
// Spreadsort combines radix-style bucket distribution with a general-purpose
// comparison sort. Large ranges with well-spread keys are partitioned into
// contiguous buckets by their most significant key bits and each bucket is
// subdivided recursively; whenever a sub-range is too small, or its keys too
// sparse, for distribution to pay off, the engine hands that sub-range to a
// comparison sort instead. The result is O(n) behavior on distribution-friendly
// data with the comparison sort's O(n log n) worst case as a floor.
//
// # Algorithm
//
// Each recursion level:
//   - Scans the sub-range for its extremes, returning early if it is already
//     sorted or all keys are equal.
//   - Derives the number of significant key bits from the min-to-max spread
//     and picks how many of them to consume this pass (the fan-out is bounded
//     by a configurable bucket budget).
//   - Tallies bucket occupancy, computes prefix sums, and swaps elements into
//     their buckets in place.
//   - Recurses into each bucket, or delegates it to the comparison sort when
//     the size/range heuristic says distribution is no longer worthwhile.
//     Sub-ranges below the minimum sort size never enter the engine at all.
//
// Floats are keyed through an order-preserving bit transform: the sign bit is
// flipped for positives and all bits are inverted for negatives, so the
// unsigned integer keys sort in the same order as the float values. Signed
// integers get the sign bit flipped for the same reason.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-spreadsort/spread"
//
//	func ProcessData(data []float64) {
//	    spread.SortFloats(data) // in-place ascending sort
//	}
//
// Custom keys are supported through a right-shift functor, so a struct slice
// can be sorted on a member without materializing full keys:
//
//	spread.SortByFunc(people,
//	    func(p Person, offset uint) uint64 { return spread.Key(p.Age) >> offset },
//	    func(a, b Person) bool { return a.Age < b.Age })
//
// # Properties
//
// All entry points sort in place and are reentrant: disjoint slices may be
// sorted concurrently, but a single slice must not be sorted by more than one
// goroutine at a time. The sort is not stable; neither the bucket swap cycle
// nor the default fallback (the standard library's pattern-defeating
// quicksort) preserves the input order of equal elements.
//
// NaN values are accepted but their final position is unspecified. The default
// float ordering compares transformed keys, which gives NaN a deterministic
// slot (above +Inf for positive NaN payloads, below -Inf for negative ones)
// and keeps the fallback comparator a strict weak ordering. Negative zero and
// positive zero compare equal and share a key.
package spread
