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

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type count int

type level uint8

// The result type of each policy is fixed at compile time.
var (
	_ Promotion[Half, float32, Half]       = HalfPromotion()
	_ Promotion[int, float32, Half]        = IntPromotion[int]()
	_ Promotion[uint64, float32, Half]     = IntPromotion[uint64]()
	_ Promotion[count, float32, Half]      = IntPromotion[count]()
	_ Promotion[float32, float32, float32] = FloatPromotion[float32]()
	_ Promotion[float64, float64, float64] = FloatPromotion[float64]()
	_ Promotion[celsius, celsius, celsius] = FloatPromotion[celsius]()
)

func TestResultTypeIntegers(t *testing.T) {
	halfType := reflect.TypeFor[Half]()
	f32 := reflect.TypeFor[float32]()

	tests := []struct {
		name    string
		result  reflect.Type
		working reflect.Type
	}{
		{"int", IntPromotion[int]().ResultType(), IntPromotion[int]().WorkingType()},
		{"int8", IntPromotion[int8]().ResultType(), IntPromotion[int8]().WorkingType()},
		{"int16", IntPromotion[int16]().ResultType(), IntPromotion[int16]().WorkingType()},
		{"int32", IntPromotion[int32]().ResultType(), IntPromotion[int32]().WorkingType()},
		{"int64", IntPromotion[int64]().ResultType(), IntPromotion[int64]().WorkingType()},
		{"uint", IntPromotion[uint]().ResultType(), IntPromotion[uint]().WorkingType()},
		{"uint8", IntPromotion[uint8]().ResultType(), IntPromotion[uint8]().WorkingType()},
		{"uint16", IntPromotion[uint16]().ResultType(), IntPromotion[uint16]().WorkingType()},
		{"uint32", IntPromotion[uint32]().ResultType(), IntPromotion[uint32]().WorkingType()},
		{"uint64", IntPromotion[uint64]().ResultType(), IntPromotion[uint64]().WorkingType()},
		{"uintptr", IntPromotion[uintptr]().ResultType(), IntPromotion[uintptr]().WorkingType()},
		{"named", IntPromotion[level]().ResultType(), IntPromotion[level]().WorkingType()},
		{"half", HalfPromotion().ResultType(), HalfPromotion().WorkingType()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, halfType, tt.result)
			assert.Equal(t, f32, tt.working)
		})
	}
}

func TestResultTypeFloats(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[float32](), FloatPromotion[float32]().ResultType())
	assert.Equal(t, reflect.TypeFor[float32](), FloatPromotion[float32]().WorkingType())
	assert.Equal(t, reflect.TypeFor[float64](), FloatPromotion[float64]().ResultType())
	assert.Equal(t, reflect.TypeFor[float64](), FloatPromotion[float64]().WorkingType())
	assert.Equal(t, reflect.TypeFor[celsius](), FloatPromotion[celsius]().ResultType())
	assert.Equal(t, reflect.TypeFor[gain](), FloatPromotion[gain]().ResultType())
}

// TestOperatorsShareThePolicy checks that every operator and both operand
// orders produce the type the policy names.
func TestOperatorsShareThePolicy(t *testing.T) {
	h := Narrow(1.5)

	for _, v := range []any{
		h.Add(h), h.Sub(h), h.Mul(h), h.Div(h),
		AddInt(h, 1), IntAdd(int8(1), h), SubInt(h, uint(1)), IntSub(count(1), h),
		MulInt(h, int64(3)), IntMul(uint16(3), h), DivInt(h, uintptr(2)), IntDiv(2, h),
	} {
		assert.IsType(t, Half{}, v)
	}

	assert.IsType(t, float64(0), AddFloat(h, 1.0))
	assert.IsType(t, float64(0), FloatSub(1.0, h))
	assert.IsType(t, float32(0), MulFloat(h, float32(2)))
	assert.IsType(t, float32(0), FloatDiv(float32(2), h))
	assert.IsType(t, celsius(0), AddFloat(h, celsius(20)))
}

func TestPromotionWidening(t *testing.T) {
	t.Run("IntegersRoundToFloat32", func(t *testing.T) {
		p := IntPromotion[int64]()
		assert.Equal(t, float32(16777216), p.widen(1<<24+1))
		assert.Equal(t, float32(-3), IntPromotion[int8]().widen(-3))
	})

	t.Run("HalfWidensExactlyIntoFloat64", func(t *testing.T) {
		p := FloatPromotion[float64]()
		h := FromBits(0x3555) // 0.333251953125
		assert.Equal(t, 0.333251953125, p.half(h))
		assert.Equal(t, 0.1, p.widen(0.1))
		assert.Equal(t, 0.1, p.settle(0.1))
	})

	t.Run("HalfSettlesByNarrowing", func(t *testing.T) {
		p := HalfPromotion()
		assert.Equal(t, Narrow(float32(0.1)), p.settle(0.1))
	})
}
