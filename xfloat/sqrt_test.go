/*
   fixedmath xfloat package - square root tests.

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
	"math"
	"testing"
)

func TestSqrtEvenExponent(t *testing.T) {
	a := mustFromFloat64(t, 4.0)
	got := Sqrt(a).ToFloat64()
	if math.Abs(got-2.0) > 1e-6 {
		t.Fatalf("sqrt(4) = %v, want ~2", got)
	}
}

func TestSqrtOddExponent(t *testing.T) {
	a := mustFromFloat64(t, 2.0)
	got := Sqrt(a).ToFloat64()
	if math.Abs(got-math.Sqrt2) > 1e-6 {
		t.Fatalf("sqrt(2) = %v, want ~%v", got, math.Sqrt2)
	}
}

func TestSqrtNegativeIsNaN(t *testing.T) {
	a := mustFromFloat64(t, -4.0)
	if got := Sqrt(a); !got.IsNaN() {
		t.Fatalf("sqrt(-4) = %+v, want NaN", got)
	}
}

func TestSqrtZeroPreservesSign(t *testing.T) {
	pz := Zero(testExpBits, testManBits, testBias, false)
	nz := Zero(testExpBits, testManBits, testBias, true)
	if got := Sqrt(pz); !got.IsZero() || got.Sign() {
		t.Fatalf("sqrt(+0) = %+v, want +0", got)
	}
	if got := Sqrt(nz); !got.IsZero() || !got.Sign() {
		t.Fatalf("sqrt(-0) = %+v, want -0", got)
	}
}

func TestSqrtInfinity(t *testing.T) {
	posInf := Inf(testExpBits, testManBits, testBias, false)
	negInf := Inf(testExpBits, testManBits, testBias, true)
	if got := Sqrt(posInf); !got.IsInf() || got.Sign() {
		t.Fatalf("sqrt(+Inf) = %+v, want +Inf", got)
	}
	if got := Sqrt(negInf); !got.IsNaN() {
		t.Fatalf("sqrt(-Inf) = %+v, want NaN", got)
	}
}
