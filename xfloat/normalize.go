/*
   fixedmath xfloat package - shared normalize-then-round core.

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

package xfloat

import (
	"github.com/rcornwell/fixedmath/fpcontext"
	"github.com/rcornwell/fixedmath/fixed"
	"github.com/rcornwell/fixedmath/quant"
)

// highestSetBit returns the position (0 = LSB) of the most significant set
// bit of the unsigned magnitude stored in limbs, or -1 if every limb is
// zero. This mirrors fixed/convert.go's private bit scan, kept as its own
// small copy here since xfloat only has access to fixed.Value's exported
// RawLimbs, not that package's internals.
func highestSetBit(limbs []uint64) int {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] == 0 {
			continue
		}
		for b := 63; b >= 0; b-- {
			if limbs[i]&(uint64(1)<<uint(b)) != 0 {
				return i*64 + b
			}
		}
	}
	return -1
}

// normalizeAndRound is the shared last stage of every xfloat arithmetic
// operator (spec.md section 4.7's "normalize, quantize once, handle
// carry-out, check bounds, strip hidden 1, store"): mag is a non-negative
// fixed-point value such that the operation's true result magnitude equals
// mag's represented value times 2^tentativeExp. It normalizes mag into
// [1,2), rounds to manBits once using qmode, handles the post-round carry
// and subnormal/overflow bounds, and returns the finished Value.
func normalizeAndRound(mag fixed.Value, tentativeExp int, sign bool, expBits, manBits, bias int, qmode quant.Mode) Value {
	if mag.IsZero() {
		return Zero(expBits, manBits, bias, sign)
	}

	msb := highestSetBit(mag.RawLimbs())
	shift := msb - mag.FracBits()
	normExp := tentativeExp + shift

	var normMag fixed.Value
	switch {
	case shift > 0:
		normMag = mag.Shr(shift)
	case shift < 0:
		normMag = mag.Shl(-shift)
	default:
		normMag = mag
	}

	// biasedExp is the stored exponent field a normal encoding of normExp
	// would need (biasedExp = normExp + bias). When that's less than 1 the
	// result underflows into the subnormal range (or to zero): extraShift
	// is the additional right-shift, beyond normalizing into [1,2), that a
	// subnormal encoding applies on top of the usual manBits fractional
	// bits, and the stored field floors at 0.
	biasedExp := normExp + bias
	extraShift := 0
	if biasedExp < 1 {
		extraShift = 1 - biasedExp
		biasedExp = 0
	}

	targetFrac := manBits - extraShift
	newBits := 2 + targetFrac
	if newBits < 1 {
		return Zero(expBits, manBits, bias, sign)
	}

	rounded := normMag.Cast(newBits, 2, qmode, quant.Wrap)
	rawInt := rounded.RawLimbs()[0]

	carryBit := uint(targetFrac + 1)
	if extraShift == 0 && carryBit < 64 && rawInt&(uint64(1)<<carryBit) != 0 {
		biasedExp++
		rawInt >>= 1
	}

	var man uint64
	if extraShift > 0 {
		// The rounded magnitude, read unsigned at newBits width, is the
		// subnormal's stored field itself (value = man * 2^(1-bias-manBits));
		// rounding up to 2^manBits gives the smallest normal.
		u := rawInt & ((uint64(1) << uint(newBits)) - 1)
		if u>>uint(manBits) != 0 {
			biasedExp = 1
		}
		man = u & manMask(manBits)
	} else {
		man = rawInt &^ (uint64(1) << uint(manBits))
		man &= manMask(manBits)
	}

	if biasedExp >= int(maxExpOf(expBits)) {
		return Inf(expBits, manBits, bias, sign)
	}
	return Value{sign: sign, exp: uint64(biasedExp), man: man, expBits: expBits, manBits: manBits, bias: bias}
}

func manMask(manBits int) uint64 {
	return (uint64(1) << uint(manBits)) - 1
}

// mantissaFixed builds the exact fixed-point mantissa of a finite nonzero
// value v at (2 integer bits, manBits+1 fractional bits), per spec.md
// section 4.7's "form fixed-point mantissas with two integer bits and
// man_bits+1 fractional bits."
func mantissaFixed(v Value) fixed.Value {
	m, _ := fixed.FromRawBits(2, v.manBits+1, []uint64{v.hiddenMan() << 1})
	return m
}

func defaultQuantMode() quant.Mode {
	return fpcontext.FloatQuantMode()
}
