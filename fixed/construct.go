/*
   fixedmath fixed package - constructors.

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

package fixed

import (
	"fmt"
	"math"

	"github.com/rcornwell/fixedmath"
	"github.com/rcornwell/fixedmath/limb"
	"github.com/rcornwell/fixedmath/quant"
)

// New returns the zero value at the given layout.
func New(intBits, fracBits int) (Value, error) {
	bits := intBits + fracBits
	if bits < 1 {
		return Value{}, fmt.Errorf("fixed.New: %w: bits = %d", fixedmath.ErrInvalidBits, bits)
	}
	return Value{bits: bits, intBits: intBits, limbs: make([]uint64, limbCount(bits))}, nil
}

// FromRawBits builds a value from an explicit two's complement limb vector
// (least-significant limb first). raw may be shorter or longer than the
// layout needs; it is copied into a freshly sign-extended/truncated
// storage of exactly limbCount(bits) limbs.
func FromRawBits(intBits, fracBits int, raw []uint64) (Value, error) {
	bits := intBits + fracBits
	if bits < 1 {
		return Value{}, fmt.Errorf("fixed.FromRawBits: %w: bits = %d", fixedmath.ErrInvalidBits, bits)
	}
	limbs := make([]uint64, limbCount(bits))
	copy(limbs, raw)
	quant.SignExtend(limbs, bits)
	return Value{bits: bits, intBits: intBits, limbs: limbs}, nil
}

// FromInt64 builds a value equal to the integer n at the given layout
// (fracBits fractional bits, all zero below the point). fracBits must be
// >= 0.
func FromInt64(intBits, fracBits int, n int64) (Value, error) {
	v, err := New(intBits, fracBits)
	if err != nil {
		return Value{}, err
	}
	if fracBits < 0 {
		return Value{}, fmt.Errorf("fixed.FromInt64: %w: negative fracBits unsupported", fixedmath.ErrInvalidBits)
	}
	raw := make([]uint64, len(v.limbs))
	raw[0] = uint64(n)
	if n < 0 {
		for i := 1; i < len(raw); i++ {
			raw[i] = ^uint64(0)
		}
	}
	limb.LeftShiftN(raw, raw, fracBits)
	quant.SignExtend(raw, v.bits)
	v.limbs = raw
	return v, nil
}

// FromFloat64 converts a float64 to the given layout, per spec.md section
// 4.4's "from double" conversion: extract the mantissa and hidden bit,
// align it to fracBits by a single shift (rounding if bits would be
// discarded), negate if the sign bit is set, then wrap into bits via the
// overflow step of the cast pipeline.
func FromFloat64(intBits, fracBits int, f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("fixed.FromFloat64: %w: %v is not finite", fixedmath.ErrInvalidConversion, f)
	}
	bits := intBits + fracBits
	if bits < 1 {
		return Value{}, fmt.Errorf("fixed.FromFloat64: %w: bits = %d", fixedmath.ErrInvalidBits, bits)
	}

	bitsPattern := math.Float64bits(f)
	sign := bitsPattern>>63 != 0
	exp := int((bitsPattern >> 52) & 0x7FF)
	man := bitsPattern & ((1 << 52) - 1)

	var mantissa uint64
	var binExp int
	if exp == 0 {
		if man == 0 {
			return New(intBits, fracBits)
		}
		mantissa = man
		binExp = 1 - 1023
	} else {
		mantissa = man | (1 << 52)
		binExp = exp - 1023
	}

	// mantissa is a 53-bit integer representing f's magnitude as
	// mantissa * 2^(binExp - 52). To land it at fracBits fractional bits,
	// shift by (binExp - 52 + fracBits).
	shift := binExp - 52 + fracBits

	n := limbCount(bits) + 2 // generous headroom for the shift and rounding
	acc := make([]uint64, n)
	acc[0] = mantissa

	if shift >= 0 {
		shifted := make([]uint64, n)
		limb.LeftShiftN(shifted, acc, shift)
		acc = shifted
	} else {
		// Spec's "add 2^(|shift|-1) then right-shift" is exactly
		// round-to-nearest-ties-to-+infinity: add 1 to the floored
		// quotient iff the guard bit (bit d-1, the top discarded bit) is
		// set, regardless of the sticky bits below it.
		d := -shift
		g, _ := quant.GuardSticky(acc, min(d, n*limbWidth))
		shifted := make([]uint64, n)
		limb.ArithRightShiftN(shifted, acc, d, n*limbWidth)
		acc = shifted
		if g {
			limb.InplaceAddSingle(acc, 1)
		}
	}

	if sign {
		limb.NegateInplace(acc)
	}

	quant.ApplyOverflow(acc, bits, quant.Wrap)
	limbs := make([]uint64, limbCount(bits))
	copy(limbs, acc)
	quant.SignExtend(limbs, bits)
	return Value{bits: bits, intBits: intBits, limbs: limbs}, nil
}

// FromValue casts v into a new layout using TRN/Wrap, the default spec.md
// section 3 describes for "another fixed-point plus layout".
func FromValue(intBits, fracBits int, v Value) Value {
	return v.Cast(intBits+fracBits, intBits, quant.TRN, quant.Wrap)
}
