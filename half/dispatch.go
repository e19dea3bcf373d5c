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

import "math"

// Op is a binary arithmetic operation.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "unknown"
	}
}

// apply evaluates a op b in working precision. An Op outside the defined
// set yields NaN.
func apply[W Float](op Op, a, b W) W {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return W(math.NaN())
	}
}

// dispatch decodes a then b, applies op as (a op b) and settles the result.
// a is always the left operand as the caller wrote it.
func dispatch[A, B any, W Float, R any](op Op, a A, b B, da func(A) W, db func(B) W, settle func(W) R) R {
	x := da(a)
	y := db(b)
	return settle(apply(op, x, y))
}

// Apply returns h op x under the promotion policy p.
func Apply[T any, W Float, R any](p Promotion[T, W, R], op Op, h Half, x T) R {
	return dispatch(op, h, x, p.half, p.widen, p.settle)
}

// ApplyRev returns x op h under the promotion policy p.
func ApplyRev[T any, W Float, R any](p Promotion[T, W, R], op Op, x T, h Half) R {
	return dispatch(op, x, h, p.widen, p.half, p.settle)
}
