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
	"math"
	"unsafe"
)

// Key returns the order-preserving unsigned sort key of an integer value.
// Unsigned values map to themselves; signed values get the sign bit flipped
// so that negatives order before non-negatives.
func Key[T Integers](v T) uint64 {
	var zero T
	width := uint(unsafe.Sizeof(zero)) * 8
	k := uint64(v)
	if width < 64 {
		k &= 1<<width - 1
	}
	if zero-1 < zero { // signed type
		k ^= 1 << (width - 1)
	}
	return k
}

// FloatKey returns the order-preserving unsigned sort key of a float value:
// positive values get the sign bit flipped, negative values get all bits
// inverted. For any non-NaN a < b, FloatKey(a) < FloatKey(b), and equal values
// (including -0.0 and +0.0) share a key. NaN maps to a valid key whose
// position relative to the ordered values is unspecified.
func FloatKey[T Floats](f T) uint64 {
	if f == 0 {
		f = 0 // collapse -0.0 onto +0.0
	}
	if unsafe.Sizeof(f) == 4 {
		b := math.Float32bits(float32(f))
		if b&(1<<31) != 0 {
			return uint64(^b)
		}
		return uint64(b ^ 1<<31)
	}
	b := math.Float64bits(float64(f))
	if b&(1<<63) != 0 {
		return ^b
	}
	return b ^ 1<<63
}

// IntShift returns the default RightShift for integer elements, composing Key
// with a logical right shift.
func IntShift[T Integers]() RightShift[T] {
	return func(v T, offset uint) uint64 {
		return Key(v) >> offset
	}
}

// FloatShift returns the default RightShift for float elements, composing
// FloatKey with a logical right shift.
func FloatShift[T Floats]() RightShift[T] {
	return func(v T, offset uint) uint64 {
		return FloatKey(v) >> offset
	}
}
