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

// SortFloats sorts a float slice in ascending order in place. The default
// ordering compares transformed keys, which matches < on non-NaN values,
// treats -0.0 and +0.0 as equal, and gives NaN a deterministic (but
// unspecified) position instead of breaking the comparator's strict weak
// ordering.
func SortFloats[T Floats](data []T, opts ...Option) {
	SortFloatsBy(data, FloatShift[T](), opts...)
}

// SortFloatsBy sorts data in ascending key order using a custom right-shift
// functor. The functor must be monotonic with respect to the default float
// key ordering.
func SortFloatsBy[T Floats](data []T, shift RightShift[T], opts ...Option) {
	SortByFunc(data, shift, floatLess[T], opts...)
}

// SortFloatsByFunc sorts data using a custom right-shift functor and
// comparator, with the same consistency requirement as SortByFunc. The
// comparator must remain a strict weak ordering for every value present; raw
// < on floats does not qualify when NaNs may appear.
func SortFloatsByFunc[T Floats](data []T, shift RightShift[T], less Less[T], opts ...Option) {
	SortByFunc(data, shift, less, opts...)
}

func floatLess[T Floats](a, b T) bool {
	return FloatKey(a) < FloatKey(b)
}
