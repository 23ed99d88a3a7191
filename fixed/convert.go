/*
   fixedmath fixed package - float64 conversion.

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
	"math"

	"github.com/rcornwell/fixedmath/limb"
	"github.com/rcornwell/fixedmath/quant"
)

// ToFloat64 converts v to the nearest float64, per spec.md section 4.4's
// "to double": an exact conversion except for the single round-to-nearest
// step taken when v needs more than 53 bits of precision, and saturation
// to +-Inf when v's magnitude exceeds float64's range.
func (v Value) ToFloat64() float64 {
	if v.IsZero() {
		return 0
	}

	negative := v.IsNegative()
	n := len(v.limbs) + 1
	mag := v.absLimbs(n)

	msbPos := highestSetBit(mag)
	// Left-shift so the MSB lands at bit 52 of a 53-bit window (bits
	// 0..52), i.e. shift = 52 - msbPos.
	shift := 52 - msbPos
	windowed := make([]uint64, n+1)
	if shift >= 0 {
		limb.LeftShiftN(windowed, mag, shift)
	} else {
		d := -shift
		g, _ := quant.GuardSticky(mag, min(d, n*limbWidth))
		limb.ArithRightShiftN(windowed, mag, d, n*limbWidth)
		if g {
			limb.InplaceAddSingle(windowed, 1)
			// A round-up can carry the window out to bit 53; renormalize.
			if limb.Bit(windowed, 53) != 0 {
				renorm := make([]uint64, len(windowed))
				limb.ArithRightShiftN(renorm, windowed, 1, len(windowed)*limbWidth)
				windowed = renorm
				shift--
			}
		}
	}

	exp := 1023 + 52 - shift - v.FracBits()

	var manBits uint64
	for i := 0; i < 52; i++ {
		manBits |= limb.Bit(windowed, i) << uint(i)
	}

	if exp >= 2047 {
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if exp < 1 {
		// Subnormal: re-derive the window shifted right by (1 - exp)
		// further, with exp forced to 0, dropping the hidden bit.
		extra := 1 - exp
		if extra >= 64 {
			if negative {
				return math.Copysign(0, -1)
			}
			return 0
		}
		full := manBits | (1 << 52)
		full >>= uint(extra)
		bitsPattern := full
		if negative {
			bitsPattern |= 1 << 63
		}
		return math.Float64frombits(bitsPattern)
	}

	bitsPattern := (uint64(exp) << 52) | manBits
	if negative {
		bitsPattern |= 1 << 63
	}
	return math.Float64frombits(bitsPattern)
}

// highestSetBit returns the position of the highest set bit in a (0 for an
// all-zero vector, matching the convention that shift = 52 - 0 leaves a
// zero value untouched -- callers must not reach here with an all-zero
// vector; ToFloat64 short-circuits IsZero before calling absLimbs/this).
func highestSetBit(a []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*limbWidth + (limbWidth - 1 - leadingZeros64(a[i]))
		}
	}
	return 0
}

func leadingZeros64(x uint64) int {
	n := 0
	for i := 63; i >= 0; i-- {
		if x&(uint64(1)<<uint(i)) != 0 {
			break
		}
		n++
	}
	return n
}
