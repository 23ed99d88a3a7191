/*
   fixedmath fixed package - cast pipeline tests.

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
	"testing"

	"github.com/rcornwell/fixedmath/quant"
)

func TestCastGrowingFracBitsIsExact(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 5) // 5.0 in Q4.4
	b := a.Cast(16, 8, quant.TRN, quant.Wrap)
	if got := b.ToFloat64(); got != 5 {
		t.Fatalf("Cast growing fracBits = %v, want 5", got)
	}
}

func TestCastShrinkingFracBitsTruncates(t *testing.T) {
	// 3.75 in Q4.4 (raw 0b0011_1100 = 60), cast down to Q4.1 truncating
	// three fractional bits (TRN floors toward -infinity, here just toward
	// zero since the value is positive): 3.75 -> 3.5.
	a, err := FromFloat64(4, 4, 3.75)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	b := a.Cast(5, 4, quant.TRN, quant.Wrap)
	if got := b.ToFloat64(); got != 3.5 {
		t.Fatalf("Cast shrinking fracBits = %v, want 3.5", got)
	}
}

func TestCastShrinkingFracBitsRounds(t *testing.T) {
	a, err := FromFloat64(4, 4, 3.75)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	b := a.Cast(6, 5, quant.RND, quant.Wrap)
	if got := b.ToFloat64(); got != 4 {
		t.Fatalf("Cast with RND = %v, want 4", got)
	}
}

func TestCastSaturatesOnOverflow(t *testing.T) {
	a := mustFromInt64(t, 16, 0, 200)
	b := a.Cast(4, 4, quant.TRN, quant.Sat)
	if got := b.ToFloat64(); got != 7 {
		t.Fatalf("Cast saturating overflow = %v, want 7 (max of signed 4-bit)", got)
	}
}

func TestResizeKeepsFracBits(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 5)
	b := a.Resize(16, quant.TRN, quant.Wrap)
	if b.FracBits() != 4 {
		t.Fatalf("Resize FracBits = %d, want 4", b.FracBits())
	}
	if got := b.ToFloat64(); got != 5 {
		t.Fatalf("Resize result = %v, want 5", got)
	}
}
