/*
   fixedmath fixed package - decimal string conversion.

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
	"strings"

	"github.com/rcornwell/fixedmath/bcd"
	"github.com/rcornwell/fixedmath/limb"
	"github.com/rcornwell/fixedmath/quant"
)

// String renders v as a decimal string: the integer part converted exactly
// via double-dabble, and (when fracBits > 0) exactly fracBits digits after
// the point, each exact to the full binary precision v stores (spec.md
// section 4.4's to_decimal_string). intBits and fracBits are both assumed
// non-negative; a value with a negative intBits or fracBits (a layout
// shifted past its own width via Shl/Shr) falls back to a fixed-notation
// dump of the raw layout instead of a decimal string.
func (v Value) String() string {
	intBits, fracBits := v.IntBits(), v.FracBits()
	if intBits < 0 || fracBits < 0 {
		return fmt.Sprintf("fixed<%d.%d>(raw=%v)", intBits, fracBits, v.RawLimbs())
	}

	negative := v.IsNegative()
	n := len(v.limbs) + 1
	mag := v.absLimbs(n)

	intPart := extractBits(mag, fracBits, intBits)
	intDigits := bcd.Trim(bcd.BinToBCD(intPart, intBits))

	var b strings.Builder
	if negative && !allZero(mag) {
		b.WriteByte('-')
	}
	for i := len(intDigits) - 1; i >= 0; i-- {
		b.WriteByte('0' + intDigits[i])
	}

	if fracBits > 0 {
		fracPart := extractBits(mag, 0, fracBits)
		// binFrac / 2^fracBits == binFrac * 5^fracBits / 10^fracBits, so the
		// exact decimal fraction digits are binFrac's decimal digits scaled
		// by 5, fracBits times; the result is guaranteed to fit in exactly
		// fracBits digits since binFrac < 2^fracBits.
		fracDigits := bcd.BinToBCD(fracPart, fracBits)
		for i := 0; i < fracBits; i++ {
			fracDigits = mulSmall(fracDigits, 5)
		}
		b.WriteByte('.')
		for i := fracBits - 1; i >= 0; i-- {
			b.WriteByte('0' + digitAt(fracDigits, i))
		}
	}
	return b.String()
}

// FromString parses a decimal string and casts the exact rational it
// describes into the given layout (spec.md section 4.4's from_string).
// Unlike FromFloat64, which is bounded by float64's 53-bit mantissa, this
// builds the parsed value at a working precision wide enough to hold every
// parsed digit exactly, via the same Add/Mul/Quo this package already
// implements, then lets Cast perform the single final rounding step.
func FromString(intBits, fracBits int, s string, qmode quant.Mode, vmode quant.Overflow) (Value, error) {
	digits, fracDigits, negative, err := bcd.Parse(s)
	if err != nil {
		return Value{}, fmt.Errorf("fixed.FromString: %w", err)
	}

	workBits := decimalBitWidth(len(digits)) + 8
	ten, err := FromInt64(workBits, 0, 10)
	if err != nil {
		return Value{}, fmt.Errorf("fixed.FromString: %w", err)
	}
	acc, err := FromInt64(workBits, 0, 0)
	if err != nil {
		return Value{}, fmt.Errorf("fixed.FromString: %w", err)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		d, err := FromInt64(workBits, 0, int64(digits[i]))
		if err != nil {
			return Value{}, fmt.Errorf("fixed.FromString: %w", err)
		}
		acc = FromValue(workBits, 0, Add(Mul(acc, ten), d))
	}

	result := acc
	if fracDigits > 0 {
		scale, err := FromInt64(workBits, 0, 1)
		if err != nil {
			return Value{}, fmt.Errorf("fixed.FromString: %w", err)
		}
		for i := 0; i < fracDigits; i++ {
			scale = FromValue(workBits, 0, Mul(scale, ten))
		}
		result, err = Quo(acc, scale)
		if err != nil {
			return Value{}, fmt.Errorf("fixed.FromString: %w", err)
		}
	}
	if negative {
		result = Neg(result)
	}

	return result.Cast(intBits+fracBits, intBits, qmode, vmode), nil
}

// decimalBitWidth returns enough bits to hold any unsigned value with
// digitCount decimal digits, generously rounding log2(10) up (it need only
// be an upper bound: FromString's working layout is scratch space, trimmed
// away by the final Cast).
func decimalBitWidth(digitCount int) int {
	return (digitCount*34)/10 + 4
}

// extractBits returns bits [lo, lo+width) of src as their own limb vector,
// src assumed non-negative so a logical and an arithmetic right shift
// coincide.
func extractBits(src []uint64, lo, width int) []uint64 {
	if width <= 0 {
		return nil
	}
	n := limbCount(width)
	shifted := make([]uint64, len(src))
	limb.ArithRightShiftN(shifted, src, lo, len(src)*limbWidth)
	out := make([]uint64, n)
	copy(out, shifted)
	for i := width; i < n*limbWidth; i++ {
		limb.SetBit(out, i, 0)
	}
	return out
}

func allZero(v []uint64) bool {
	for _, l := range v {
		if l != 0 {
			return false
		}
	}
	return true
}

func digitAt(d bcd.Digits, i int) uint8 {
	if i < 0 || i >= len(d) {
		return 0
	}
	return d[i]
}

// mulSmall multiplies an unsigned LSD-first decimal digit vector by a
// single small digit k (k < 10), growing the vector by one digit to hold
// any carry.
func mulSmall(d bcd.Digits, k uint8) bcd.Digits {
	out := make(bcd.Digits, len(d)+1)
	var carry uint16
	for i, digit := range d {
		acc := uint16(digit)*uint16(k) + carry
		out[i] = uint8(acc % 10)
		carry = acc / 10
	}
	out[len(d)] = uint8(carry)
	return out
}
