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
	"unsafe"

	"github.com/ajroetker/go-half/fp16"
)

// Half represents an IEEE 754 half-precision (binary16) floating-point number.
// It stores the 16-bit pattern and decodes it on every use.
//
// The zero value is +0. Half is a plain value: copying it copies the
// number, and no operation modifies a Half in place.
type Half struct {
	bits uint16
}

// Narrow returns the Half nearest to f, rounding ties to even.
// Values beyond ±65504 (after rounding) become ±Inf; values too small
// for a subnormal become a zero of the same sign.
//
// Narrowing is lossy. The way back, Float32 or Float64, is exact.
func Narrow[F Float](f F) Half {
	if unsafe.Sizeof(f) == 4 {
		return Half{fp16.Encode(float32(f))}
	}
	// Round once from binary64 rather than twice via binary32.
	return Half{fp16.EncodeFloat64(float64(f))}
}

// FromBits returns the Half with the given bit pattern. The pattern is
// neither validated nor canonicalized.
func FromBits(b uint16) Half {
	return Half{b}
}

// NaN returns a quiet NaN.
func NaN() Half {
	return Half{fp16.NaN}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Half {
	if sign < 0 {
		return Half{fp16.NegInf}
	}
	return Half{fp16.Inf}
}

// Float32 widens h to float32. Every Half has an exact float32 value.
func (h Half) Float32() float32 {
	return fp16.Decode(h.bits)
}

// Float64 widens h to float64 exactly.
func (h Half) Float64() float64 {
	return fp16.DecodeFloat64(h.bits)
}

// Bits returns the raw binary16 bit pattern.
func (h Half) Bits() uint16 {
	return h.bits
}

// Pos returns h unchanged.
func (h Half) Pos() Half {
	return h
}

// Neg returns -h.
func (h Half) Neg() Half {
	return Narrow(-1 * h.Float32())
}
