/*
   fixedmath quant package - overflow handling.

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

package quant

import "testing"

func overflowOne(v int32, newBits int, mode Overflow) int32 {
	vec := []uint32{uint32(v)}
	ApplyOverflow(vec, newBits, mode)
	return int32(vec[0])
}

func TestApplyOverflowWrapWrapsSign(t *testing.T) {
	// 10 = 0b1010 doesn't fit in 4 signed bits (range [-8, 7]); wrapping
	// keeps the low 4 bits and re-derives the sign from bit 3, which here
	// silently flips the value to -6.
	if got := overflowOne(10, 4, Wrap); got != -6 {
		t.Errorf("Wrap(10, 4 bits) = %d, want -6", got)
	}
}

func TestApplyOverflowNumericStdMatchesWrapOnValidInput(t *testing.T) {
	if got := overflowOne(10, 4, NumericStd); got != -6 {
		t.Errorf("NumericStd(10, 4 bits) = %d, want -6", got)
	}
}

func TestApplyOverflowInRangeIsNoop(t *testing.T) {
	if got := overflowOne(5, 4, Wrap); got != 5 {
		t.Errorf("Wrap(5, 4 bits) = %d, want 5", got)
	}
	if got := overflowOne(-3, 4, Sat); got != -3 {
		t.Errorf("Sat(-3, 4 bits) = %d, want -3", got)
	}
}

func TestApplyOverflowSatClampsToMax(t *testing.T) {
	if got := overflowOne(10, 4, Sat); got != 7 {
		t.Errorf("Sat(10, 4 bits) = %d, want 7 (max representable)", got)
	}
}

func TestApplyOverflowSatClampsToMin(t *testing.T) {
	if got := overflowOne(-10, 4, Sat); got != -8 {
		t.Errorf("Sat(-10, 4 bits) = %d, want -8 (min representable)", got)
	}
}

func TestApplyOverflowSatBoundaryValuesAreExact(t *testing.T) {
	if got := overflowOne(7, 4, Sat); got != 7 {
		t.Errorf("Sat(7, 4 bits) = %d, want 7 (already the max, no clamp)", got)
	}
	if got := overflowOne(-8, 4, Sat); got != -8 {
		t.Errorf("Sat(-8, 4 bits) = %d, want -8 (already the min, no clamp)", got)
	}
}
