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

// Package fp16 converts between IEEE 754 binary16 bit patterns and the
// native Go float types.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Widening (Decode, DecodeFloat64) is exact for every one of the 65536
// patterns. Narrowing (Encode, EncodeFloat64) rounds to nearest, ties to
// even: overflow becomes infinity, underflow becomes a subnormal or a
// signed zero.
//
// NaN payloads are carried in both directions: the top ten payload bits
// and the sign survive a round trip, and a NaN whose surviving payload
// would be empty is encoded as a quiet NaN. As a result
// Encode(Decode(h)) == h holds for every pattern, signalling NaNs included.
package fp16

import "math"

// Bit patterns of the special binary16 values.
const (
	Zero         uint16 = 0x0000 // Positive zero
	NegZero      uint16 = 0x8000 // Negative zero
	One          uint16 = 0x3C00 // 1.0
	NegOne       uint16 = 0xBC00 // -1.0
	MaxValue     uint16 = 0x7BFF // 65504 (max finite value)
	MinNormal    uint16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	MinSubnormal uint16 = 0x0001 // 2^-24 (~5.96e-8, smallest subnormal)
	Inf          uint16 = 0x7C00 // Positive infinity
	NegInf       uint16 = 0xFC00 // Negative infinity
	NaN          uint16 = 0x7E00 // Quiet NaN (canonical)
)

const (
	signMask = 0x8000
	expMask  = 0x7C00
	mantMask = 0x03FF
	quietBit = 0x0200

	mantBits = 10
	expBias  = 15

	// Exponent of the smallest normal binary16 value.
	minExp = 1 - expBias
	// Exponent above which every value overflows to infinity.
	maxExp = expBias
)

// Decode widens a binary16 bit pattern to float32.
func Decode(h uint16) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> mantBits
	mant := uint32(h & mantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the leading one into the implicit position.
		e := uint32(127 + minExp)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= mantMask
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-expBias)<<23 | mant<<13)
	}
}

// DecodeFloat64 widens a binary16 bit pattern to float64.
func DecodeFloat64(h uint16) float64 {
	if h&expMask == expMask && h&mantMask != 0 {
		// Build the NaN directly so the payload is not touched by a
		// float32 -> float64 conversion.
		return math.Float64frombits(uint64(h&signMask)<<48 | 0x7FF0000000000000 | uint64(h&mantMask)<<42)
	}
	return float64(Decode(h))
}

// Encode narrows f to binary16, rounding to nearest even.
func Encode(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & signMask
	exp := int(bits>>23) & 0xFF
	frac := bits & 0x7FFFFF

	switch exp {
	case 0xFF:
		return special(sign, uint16(frac>>13), frac != 0)
	case 0:
		// Zero, or a float32 subnormal far below half the smallest
		// binary16 subnormal.
		return sign
	}
	return round(sign, exp-127, uint64(frac|1<<23), 24)
}

// EncodeFloat64 narrows f to binary16 in a single rounding step.
// It never routes through float32, so it cannot double-round: for every
// non-NaN float32 x, EncodeFloat64(float64(x)) == Encode(x).
func EncodeFloat64(f float64) uint16 {
	bits := math.Float64bits(f)
	sign := uint16(bits>>48) & signMask
	exp := int(bits>>52) & 0x7FF
	frac := bits & (1<<52 - 1)

	switch exp {
	case 0x7FF:
		return special(sign, uint16(frac>>42), frac != 0)
	case 0:
		return sign
	}
	return round(sign, exp-1023, frac|1<<52, 53)
}

// special encodes infinity or NaN.
func special(sign, payload uint16, nan bool) uint16 {
	if !nan {
		return sign | expMask
	}
	payload &= mantMask
	if payload == 0 {
		payload = quietBit
	}
	return sign | expMask | payload
}

// round encodes sign * sig * 2^(exp-prec+1), where sig carries its
// leading one at bit prec-1.
func round(sign uint16, exp int, sig uint64, prec uint) uint16 {
	if exp > maxExp {
		return sign | expMask
	}

	// Keep 11 significant bits for normals; subnormals lose one more bit
	// for every step below minExp.
	shift := prec - (mantBits + 1)
	if exp < minExp {
		shift += uint(minExp - exp)
		if shift > prec+1 {
			// Below half of the smallest subnormal.
			return sign
		}
	}

	m := sig >> shift
	rem := sig & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rem > halfway || (rem == halfway && m&1 == 1) {
		m++
	}

	if exp < minExp {
		// Rounding up to 0x400 lands exactly on the smallest normal.
		return sign | uint16(m)
	}
	// m still holds the implicit bit, so adding it carries into the
	// exponent field; a carry out of maxExp yields infinity.
	return sign | (uint16(exp+expBias-1)<<mantBits + uint16(m))
}
