/*
   fixedmath cfixed package - value tests.

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

package cfixed

import "testing"

func mustFromComplex128(t *testing.T, intBits, fracBits int, c complex128) Value {
	t.Helper()
	v, err := FromComplex128(intBits, fracBits, c)
	if err != nil {
		t.Fatalf("FromComplex128(%v): %v", c, err)
	}
	return v
}

func TestFromComplex128RoundTrips(t *testing.T) {
	v := mustFromComplex128(t, 8, 8, complex(3.5, -2.25))
	got := v.ToComplex128()
	if real(got) != 3.5 || imag(got) != -2.25 {
		t.Fatalf("round trip = %v, want (3.5-2.25i)", got)
	}
}

func TestEqualIsBitIdenticalNotValueEqual(t *testing.T) {
	a := mustFromComplex128(t, 8, 8, complex(1, 1))
	b := mustFromComplex128(t, 8, 8, complex(1, 1))
	if !Equal(a, b) {
		t.Fatal("identically-constructed values should be Equal")
	}

	// Same numeric value, different layout: bit-identical equality must
	// say false even though apycfixed.cc's (a-b).is_zero() idiom would
	// call these equal.
	wide := mustFromComplex128(t, 16, 16, complex(1, 1))
	if Equal(a, wide) {
		t.Fatal("values at different layouts must not compare Equal")
	}
}

func TestIsZero(t *testing.T) {
	z := mustFromComplex128(t, 8, 8, complex(0, 0))
	if !z.IsZero() {
		t.Fatal("FromComplex128(0,0) should be IsZero")
	}
	nz := mustFromComplex128(t, 8, 8, complex(0, 1))
	if nz.IsZero() {
		t.Fatal("nonzero imaginary part should not be IsZero")
	}
}

func TestNewResizesMismatchedImag(t *testing.T) {
	re := mustFromComplex128(t, 16, 16, complex(1, 0)).Real()
	im := mustFromComplex128(t, 8, 8, complex(0, 1)).Imag()
	v := New(re, im, 0, 0)
	if v.Imag().Bits() != v.Real().Bits() || v.Imag().IntBits() != v.Real().IntBits() {
		t.Fatalf("New should resize imag to real's layout: real=(%d,%d) imag=(%d,%d)",
			v.Real().Bits(), v.Real().IntBits(), v.Imag().Bits(), v.Imag().IntBits())
	}
}
