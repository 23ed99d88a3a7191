/*
   fixedmath fixed package - constructor tests.

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
	"testing"
)

func TestNewZeroValue(t *testing.T) {
	v, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("New value should be zero")
	}
	if v.Bits() != 8 || v.IntBits() != 4 || v.FracBits() != 4 {
		t.Fatalf("layout = (%d,%d,%d), want (8,4,4)", v.Bits(), v.IntBits(), v.FracBits())
	}
}

func TestNewRejectsNonPositiveWidth(t *testing.T) {
	if _, err := New(0, 0); err == nil {
		t.Fatalf("New(0,0): want error, got nil")
	}
}

func TestFromInt64RoundTrips(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 127, -128, 42} {
		v, err := FromInt64(8, 8, n)
		if err != nil {
			t.Fatalf("FromInt64(%d): %v", n, err)
		}
		if got := v.ToFloat64(); got != float64(n) {
			t.Fatalf("FromInt64(%d).ToFloat64() = %v, want %v", n, got, n)
		}
	}
}

func TestFromFloat64ExactPowerOfTwo(t *testing.T) {
	v, err := FromFloat64(8, 8, 0.5)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got := v.ToFloat64(); got != 0.5 {
		t.Fatalf("FromFloat64(0.5).ToFloat64() = %v, want 0.5", got)
	}
}

func TestFromFloat64Negative(t *testing.T) {
	v, err := FromFloat64(8, 8, -3.25)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got := v.ToFloat64(); got != -3.25 {
		t.Fatalf("FromFloat64(-3.25).ToFloat64() = %v, want -3.25", got)
	}
}

func TestFromFloat64Zero(t *testing.T) {
	v, err := FromFloat64(8, 8, 0)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("FromFloat64(0) should be zero")
	}
}

func TestFromFloat64RejectsNaNAndInf(t *testing.T) {
	if _, err := FromFloat64(8, 8, nan()); err == nil {
		t.Fatalf("FromFloat64(NaN): want error, got nil")
	}
	if _, err := FromFloat64(8, 8, math.Inf(1)); err == nil {
		t.Fatalf("FromFloat64(+Inf): want error, got nil")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestFromValueExtendsLayout(t *testing.T) {
	a := mustFromInt64(t, 4, 4, -3)
	b := FromValue(8, 8, a)
	if got := b.ToFloat64(); got != -3 {
		t.Fatalf("FromValue result = %v, want -3", got)
	}
}
