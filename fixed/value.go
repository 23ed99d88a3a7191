/*
   fixedmath fixed package - arbitrary-precision fixed-point value type.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

// Package fixed implements the arbitrary-precision fixed-point value type
// (spec.md sections 3, 4.4 and 4.5): an immutable (bits, int_bits, limbs)
// triple, its binary arithmetic, and its cast (quantize + overflow)
// pipeline. Every kernel primitive it calls is instantiated at uint64
// limbs, the module's build-time choice (see DESIGN.md).
package fixed

import (
	"github.com/rcornwell/fixedmath/limb"
	"github.com/rcornwell/fixedmath/quant"
)

// limbWidth is the bit width of the single Word instantiation this package
// (and every package built on it) uses.
const limbWidth = 64

// Value is an immutable arbitrary-precision two's complement fixed-point
// number: bits total stored width, intBits of which are the integer part
// (intBits may be negative or exceed bits; fracBits = bits - intBits
// follows the same rule), and limbs holding the two's complement encoding
// of v such that the represented real number is v * 2^(-fracBits). The top
// limb is always sign-extended above bit bits-1.
type Value struct {
	bits    int
	intBits int
	limbs   []uint64
}

// Bits reports the total stored width.
func (v Value) Bits() int { return v.bits }

// IntBits reports the integer part width.
func (v Value) IntBits() int { return v.intBits }

// FracBits reports the fractional part width (bits - intBits; may be
// negative).
func (v Value) FracBits() int { return v.bits - v.intBits }

// IsZero reports whether the stored value is exactly zero.
func (v Value) IsZero() bool {
	for _, l := range v.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// IsNegative reports the sign bit of the stored value.
func (v Value) IsNegative() bool {
	return limb.SignBit(v.limbs, v.bits)
}

// RawLimbs returns a defensive copy of the underlying two's complement limb
// vector, least-significant limb first.
func (v Value) RawLimbs() []uint64 {
	out := make([]uint64, len(v.limbs))
	copy(out, v.limbs)
	return out
}

// limbCount is the number of uint64 limbs needed to store bits significant
// bits.
func limbCount(bits int) int {
	return limb.Limbs[uint64](bits)
}

// signExtended returns a copy of v's limbs sign-extended out to n limbs
// (n must be >= len(v.limbs)).
func (v Value) signExtended(n int) []uint64 {
	out := make([]uint64, n)
	copy(out, v.limbs)
	quant.SignExtend(out, v.bits)
	return out
}

// absLimbs returns the unsigned magnitude of v, in n limbs (n must be large
// enough to hold bits+1 significant bits so the two's-complement negation
// of the most negative representable value does not wrap back on itself).
func (v Value) absLimbs(n int) []uint64 {
	out := v.signExtended(n)
	if v.IsNegative() {
		limb.NegateInplace(out)
	}
	return out
}
