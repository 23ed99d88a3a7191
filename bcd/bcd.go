/*
   fixedmath bcd package - binary/BCD conversion and decimal string I/O.

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

// Package bcd implements the double-dabble binary-to-decimal conversion and
// its inverse, plus the decimal string assembly used by the fixed-point
// layer's to_decimal_string/from_string constructors. A Digits value holds
// one decimal digit per byte (0-9), least-significant digit first; this
// mirrors the teacher's packed-decimal nibble arrays in cpu_decimal.go, one
// byte per digit instead of one nibble per byte.
package bcd

import (
	"github.com/rcornwell/fixedmath/limb"
)

// Digits is an unsigned decimal magnitude, least-significant digit first.
// Callers size it generously (see BinToBCD) and trim trailing (most
// significant) zero digits themselves if a canonical length is wanted.
type Digits []uint8

// DigitsFor returns the number of decimal digits needed to hold any unsigned
// value of bitWidth bits: ceil(bitWidth * log10(2)) plus one guard digit.
func DigitsFor(bitWidth int) int {
	// 0.30103 ~ log10(2); multiply by 100000 and divide to stay in integers.
	return (bitWidth*30103)/100000 + 2
}

// BinToBCD converts the unsigned magnitude held in an n-limb vector (n*W
// bits) to decimal digits via double-dabble: for each bit from the most to
// the least significant, every digit >= 5 is corrected by +3, the whole
// digit vector is shifted left by one bit, and the current input bit is
// shifted into the bottom digit. Because the correction runs before every
// shift, a digit can never accumulate past 9 once shifted.
func BinToBCD[W limb.Word](value []W, bitWidth int) Digits {
	digits := make(Digits, DigitsFor(bitWidth))
	for bitPos := bitWidth - 1; bitPos >= 0; bitPos-- {
		for i := range digits {
			if digits[i] >= 5 {
				digits[i] += 3
			}
		}
		carry := uint8(limb.Bit(value, bitPos))
		for i := 0; i < len(digits); i++ {
			next := (digits[i] >> 3) & 1
			digits[i] = ((digits[i] << 1) | carry) & 0xF
			carry = next
		}
	}
	return digits
}

// BCDToBin is the inverse of BinToBCD: reverse-dabble extracts the bitWidth
// bits of the original binary magnitude from a decimal digit vector by
// running the double-dabble recurrence backwards (shift the digit vector
// right by one bit, capturing the bit that falls off the bottom, then undo
// the +3 correction on any digit that the forward pass pushed to 8 or
// above). The input digits slice is mutated; callers that need to keep the
// original digits should pass a copy.
func BCDToBin[W limb.Word](digits Digits, bitWidth int) []W {
	value := make([]W, limb.Limbs[W](bitWidth))
	for bitPos := 0; bitPos < bitWidth; bitPos++ {
		bitOut := digits[0] & 1
		for i := 0; i < len(digits); i++ {
			var lowFromNext uint8
			if i+1 < len(digits) {
				lowFromNext = digits[i+1] & 1
			}
			digits[i] = (digits[i] >> 1) | (lowFromNext << 3)
		}
		for i := range digits {
			if digits[i] >= 8 {
				digits[i] -= 3
			}
		}
		limb.SetBit(value, bitPos, W(bitOut))
	}
	return value
}

// Double multiplies a decimal digit vector by two in place (LSD first),
// returning the carry digit (0 or 1) out of the most significant digit.
// Grounded on the teacher's decAdd packed-decimal correction (add 6 when
// the nibble sum exceeds 9) specialized to doubling a single operand
// against itself.
func Double(digits Digits) uint8 {
	var carry uint8
	for i := range digits {
		acc := digits[i]*2 + carry
		if acc > 9 {
			acc -= 10
			carry = 1
		} else {
			carry = 0
		}
		digits[i] = acc
	}
	return carry
}

// Halve divides a decimal digit vector by two in place (LSD first, so the
// borrow chain runs from the most to the least significant digit),
// returning the remainder bit (0 or 1) shifted out below the decimal
// point — used to walk the binary point across a BCD vector one bit at a
// time without a full division.
func Halve(digits Digits) uint8 {
	var borrow uint8
	for i := len(digits) - 1; i >= 0; i-- {
		cur := digits[i] + borrow*10
		digits[i] = cur / 2
		borrow = cur % 2
	}
	return borrow
}

// Trim returns digits with trailing (most significant) zero digits
// dropped, keeping at least one digit.
func Trim(digits Digits) Digits {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

