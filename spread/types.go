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

// Floats is a constraint for the floating-point types the engine can key.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Less reports whether a must order before b. It must impose a strict weak
// ordering on the elements.
type Less[T any] func(a, b T) bool

// RightShift extracts the top bits of an element's sort key: it returns the
// key shifted right by offset bits. Implementations must be monotonic with
// respect to the element ordering in use, and offset 0 must yield the full
// key. Custom implementations let the engine sort on a derived key (for
// example a struct member) without materializing it.
type RightShift[T any] func(v T, offset uint) uint64

// Fallback is the comparison sort the engine delegates to for sub-ranges that
// are too small or too sparse for distribution. It must leave data ordered so
// that no element compares less than any preceding element under less.
type Fallback[T any] func(data []T, less Less[T])
