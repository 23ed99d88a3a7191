/*
   fixedmath fixed package - binary-point shift tests.

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

import "testing"

func TestShlDoublesValuePerBit(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 3) // 3.0
	b := a.Shl(1)
	if b.IntBits() != 5 || b.FracBits() != 3 {
		t.Fatalf("Shl layout = (%d,%d), want (5,3)", b.IntBits(), b.FracBits())
	}
	if got := b.ToFloat64(); got != 6 {
		t.Fatalf("Shl(3.0,1) = %v, want 6", got)
	}
}

func TestShrHalvesValuePerBit(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 6) // 6.0
	b := a.Shr(1)
	if b.IntBits() != 3 || b.FracBits() != 5 {
		t.Fatalf("Shr layout = (%d,%d), want (3,5)", b.IntBits(), b.FracBits())
	}
	if got := b.ToFloat64(); got != 3 {
		t.Fatalf("Shr(6.0,1) = %v, want 3", got)
	}
}

func TestShlShrRoundTrip(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 5)
	b := a.Shl(3).Shr(3)
	if got := b.ToFloat64(); got != 5 {
		t.Fatalf("Shl(3).Shr(3) = %v, want 5", got)
	}
}
