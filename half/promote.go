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

import "reflect"

// Promotion is the resolved result-type policy for a binary operation
// between a Half and an operand of type T: both operands are decoded into
// the working precision W, and the W result settles into the result type R.
//
// There are exactly three policies, one per constructor:
//
//	HalfPromotion()      T = Half,  W = float32, R = Half
//	IntPromotion[I]()    T = I,     W = float32, R = Half
//	FloatPromotion[F]()  T = F,     W = F,       R = F
//
// Every arithmetic and comparison entry point takes a Promotion, so all
// operators and both operand orders share the same policy. The zero
// Promotion is not usable.
type Promotion[T any, W Float, R any] struct {
	half   func(Half) W
	widen  func(T) W
	settle func(W) R
}

// HalfPromotion is the policy for Half ⊕ Half.
func HalfPromotion() Promotion[Half, float32, Half] {
	return Promotion[Half, float32, Half]{
		half:   Half.Float32,
		widen:  Half.Float32,
		settle: Narrow[float32],
	}
}

// IntPromotion is the policy for Half ⊕ I. The integer converts to float32
// (rounding if it has more than 24 significant bits) and the result is
// narrowed back to a Half.
func IntPromotion[I Integer]() Promotion[I, float32, Half] {
	return Promotion[I, float32, Half]{
		half:   Half.Float32,
		widen:  func(x I) float32 { return float32(x) },
		settle: Narrow[float32],
	}
}

// FloatPromotion is the policy for Half ⊕ F. The Half widens exactly into F
// and the result stays an F.
func FloatPromotion[F Float]() Promotion[F, F, F] {
	return Promotion[F, F, F]{
		half:   func(h Half) F { return F(h.Float32()) },
		widen:  func(x F) F { return x },
		settle: func(x F) F { return x },
	}
}

// ResultType returns R, the type operations under p produce.
func (p Promotion[T, W, R]) ResultType() reflect.Type {
	return reflect.TypeFor[R]()
}

// WorkingType returns W, the precision operands are decoded into.
func (p Promotion[T, W, R]) WorkingType() reflect.Type {
	return reflect.TypeFor[W]()
}
