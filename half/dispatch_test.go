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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixedScenario(t *testing.T) {
	h := Narrow(3.5)

	// An integer operand promotes to Half.
	sum := AddInt(h, 2)
	assert.Equal(t, Narrow(5.5), sum)

	// A float64 operand makes the result a float64.
	wide := AddFloat(h, 2.0)
	assert.Equal(t, 5.5, wide)
}

func TestOperandOrderPreserved(t *testing.T) {
	a := Narrow(5.0)
	b := Narrow(2.0)
	pointFour := Narrow(float32(0.4))

	tests := []struct {
		name string
		got  Half
		want Half
	}{
		{"a-b", a.Sub(b), Narrow(3.0)},
		{"b-a", b.Sub(a), Narrow(-3.0)},
		{"a/b", a.Div(b), Narrow(2.5)},
		{"b/a", b.Div(a), pointFour},
		{"a-2", SubInt(a, 2), Narrow(3.0)},
		{"2-a", IntSub(2, a), Narrow(-3.0)},
		{"a/2", DivInt(a, 2), Narrow(2.5)},
		{"2/a", IntDiv(2, a), pointFour},
		{"ApplyRev", ApplyRev(IntPromotion[uint8](), OpSub, uint8(10), Narrow(4.0)), Narrow(6.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v (0x%04X), want %v (0x%04X)", tt.got.Float32(), tt.got.Bits(), tt.want.Float32(), tt.want.Bits())
			}
		})
	}

	assert.InDelta(t, 0.4, pointFour.Float64(), 1e-3)

	t.Run("Float", func(t *testing.T) {
		assert.Equal(t, 3.0, SubFloat(a, 2.0))
		assert.Equal(t, -3.0, FloatSub(2.0, a))
		assert.Equal(t, 2.5, DivFloat(a, 2.0))
		assert.Equal(t, 0.4, FloatDiv(2.0, a))
		assert.Equal(t, float32(0.4), FloatDiv(float32(2), a))
	})
}

// sampleHalves returns a spread of non-NaN patterns covering every exponent.
func sampleHalves() []Half {
	var out []Half
	for i := 0; i <= math.MaxUint16; i += 251 {
		h := FromBits(uint16(i))
		if math.IsNaN(float64(h.Float32())) {
			continue
		}
		out = append(out, h)
	}
	return append(out, Half{}, FromBits(0x8000), Inf(1), Inf(-1), FromBits(0x0001), FromBits(0x7BFF))
}

func TestCommutativity(t *testing.T) {
	samples := sampleHalves()
	for _, a := range samples {
		for _, b := range samples {
			if ab, ba := a.Add(b), b.Add(a); !sameValue(ab, ba) {
				t.Fatalf("0x%04X + 0x%04X: 0x%04X != 0x%04X", a.Bits(), b.Bits(), ab.Bits(), ba.Bits())
			}
			if ab, ba := a.Mul(b), b.Mul(a); !sameValue(ab, ba) {
				t.Fatalf("0x%04X * 0x%04X: 0x%04X != 0x%04X", a.Bits(), b.Bits(), ab.Bits(), ba.Bits())
			}
		}
	}
}

// sameValue treats any two NaNs as equal; everything else compares by bits.
func sameValue(a, b Half) bool {
	an := math.IsNaN(float64(a.Float32()))
	bn := math.IsNaN(float64(b.Float32()))
	if an || bn {
		return an && bn
	}
	return a.Bits() == b.Bits()
}

func TestMixedMatchesNativeMath(t *testing.T) {
	ints := []int{-70000, -3, -1, 0, 1, 2, 7, 1000, 70000}
	for _, h := range sampleHalves() {
		f := h.Float32()
		for _, x := range ints {
			w := float32(x)
			require.True(t, sameValue(Narrow(f+w), AddInt(h, x)))
			require.True(t, sameValue(Narrow(w-f), IntSub(x, h)))
			require.True(t, sameValue(Narrow(f*w), MulInt(h, x)))
			require.True(t, sameValue(Narrow(w/f), IntDiv(x, h)))

			d := float64(x) + 0.25
			got := FloatSub(d, h)
			want := d - float64(f)
			if !(math.IsNaN(got) && math.IsNaN(want)) {
				require.Equal(t, want, got)
			}
		}
	}
}

func TestFloatingPointEdgeCases(t *testing.T) {
	one := Narrow(1.0)
	zero := Half{}

	t.Run("DivisionByZero", func(t *testing.T) {
		assert.Equal(t, Inf(1), one.Div(zero))
		assert.Equal(t, Inf(-1), one.Neg().Div(zero))
		assert.Equal(t, Inf(-1), one.Div(zero.Neg()))
		assert.True(t, math.IsNaN(float64(zero.Div(zero).Float32())))
		assert.Equal(t, Inf(1), DivInt(one, 0))
		assert.True(t, math.IsInf(FloatDiv(1.0, zero), 1))
	})

	t.Run("Overflow", func(t *testing.T) {
		big := Narrow(60000.0)
		assert.Equal(t, Inf(1), big.Add(big))
		assert.Equal(t, Inf(1), MulInt(big, 2))
		// A float64 result has room for it.
		assert.Equal(t, 120000.0, AddFloat(big, 60000.0))
	})

	t.Run("Underflow", func(t *testing.T) {
		tiny := FromBits(0x0001)
		assert.Equal(t, Half{}, tiny.Mul(Narrow(0.5)))
		assert.Equal(t, FromBits(0x8000), tiny.Neg().Mul(Narrow(0.5)))
		assert.Equal(t, FromBits(0x0002), tiny.Mul(Narrow(1.5)))
	})

	t.Run("NaNPropagates", func(t *testing.T) {
		n := NaN()
		for _, got := range []Half{n.Add(one), one.Sub(n), n.Mul(zero), IntDiv(1, n), AddInt(n, 0), Inf(1).Sub(Inf(1))} {
			assert.True(t, math.IsNaN(float64(got.Float32())), "0x%04X", got.Bits())
		}
		assert.True(t, math.IsNaN(AddFloat(n, 1.0)))
	})

	t.Run("UnknownOp", func(t *testing.T) {
		got := Apply(HalfPromotion(), Op(42), one, one)
		assert.True(t, math.IsNaN(float64(got.Float32())))
		assert.True(t, math.IsNaN(Apply(FloatPromotion[float64](), Op(-1), one, 1.0)))
	})
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSub.String())
	assert.Equal(t, "*", OpMul.String())
	assert.Equal(t, "/", OpDiv.String())
	assert.Equal(t, "unknown", Op(9).String())
}
