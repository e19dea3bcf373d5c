// Copyright 2025 go-half Authors
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

package half

// Rel is a comparison operator.
//
// RelLess, RelGreater and RelEqual are primitives evaluated natively in
// working precision. The others are composed from the primitives:
//
//	a != b  is  !(a == b)
//	a >= b  is  (a == b) || (a > b)
//	a <= b  is  (a == b) || (a < b)
//
// With a NaN operand every primitive is false, so != is true while >=
// and <= are false.
type Rel int

const (
	RelLess Rel = iota
	RelGreater
	RelEqual
	RelNotEqual
	RelGreaterEqual
	RelLessEqual
)

// String returns the operator symbol.
func (r Rel) String() string {
	switch r {
	case RelLess:
		return "<"
	case RelGreater:
		return ">"
	case RelEqual:
		return "=="
	case RelNotEqual:
		return "!="
	case RelGreaterEqual:
		return ">="
	case RelLessEqual:
		return "<="
	default:
		return "unknown"
	}
}

// Primitive reports whether r is evaluated natively rather than composed.
func (r Rel) Primitive() bool {
	return r == RelLess || r == RelGreater || r == RelEqual
}

func holds[W Float](r Rel, a, b W) bool {
	switch r {
	case RelLess:
		return a < b
	case RelGreater:
		return a > b
	case RelEqual:
		return a == b
	case RelNotEqual:
		return !holds(RelEqual, a, b)
	case RelGreaterEqual:
		return holds(RelEqual, a, b) || holds(RelGreater, a, b)
	case RelLessEqual:
		return holds(RelEqual, a, b) || holds(RelLess, a, b)
	default:
		return false
	}
}

// relate decodes a then b and reports whether a r b.
func relate[A, B any, W Float](r Rel, a A, b B, da func(A) W, db func(B) W) bool {
	x := da(a)
	y := db(b)
	return holds(r, x, y)
}

// Compare reports whether h r x under the promotion policy p.
func Compare[T any, W Float, R any](p Promotion[T, W, R], r Rel, h Half, x T) bool {
	return relate(r, h, x, p.half, p.widen)
}

// CompareRev reports whether x r h under the promotion policy p.
func CompareRev[T any, W Float, R any](p Promotion[T, W, R], r Rel, x T, h Half) bool {
	return relate(r, x, h, p.widen, p.half)
}
