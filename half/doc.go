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

// Package half provides Half, a software IEEE 754 binary16 value that mixes
// with native Go integers and floats in arithmetic and comparisons.
//
// Every operation decodes its operands into a working precision, applies
// the native float operation there, and settles the result into a result
// type chosen by a single promotion policy:
//
//	Half    op Half      -> Half     (computed in float32)
//	Half    op integer I -> Half     (computed in float32)
//	Half    op float F   -> F        (computed in F)
//
// The policy is static: it is carried by the type parameters of a
// Promotion, so the result type of every call is known at compile time
// and operands that are neither integers nor floats do not compile.
//
// Go has no operator overloading, so operators are named. Half ⊕ Half
// operators are methods; mixed operators are generic functions whose name
// carries the operand family and order:
//
//	h.Sub(o)           // h - o, Half
//	half.SubInt(h, 2)  // h - 2, Half
//	half.IntSub(2, h)  // 2 - h, Half
//	half.SubFloat(h, 2.0)  // h - 2.0, float64
//	half.FloatSub(2.0, h)  // 2.0 - h, float64
//
// Widening is always exact (Float32, Float64); narrowing always rounds to
// nearest even (Narrow). Nothing in this package returns an error or
// panics: division by zero, overflow and NaN behave as native float math.
//
// Half values carry no state beyond their 16-bit word and are safe to use
// from any number of goroutines.
package half

//go:generate go run ../cmd/halfgen --output ops.gen.go --package half
