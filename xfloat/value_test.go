/*
   fixedmath xfloat package - value tests.

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

import "testing"

func TestIEEEBiasMatchesFloat64(t *testing.T) {
	if got := IEEEBias(11); got != 1023 {
		t.Fatalf("IEEEBias(11) = %d, want 1023", got)
	}
	if got := IEEEBias(8); got != 127 {
		t.Fatalf("IEEEBias(8) = %d, want 127", got)
	}
}

func TestClassifiersZeroSubnormalNormal(t *testing.T) {
	z := Zero(8, 23, 127, false)
	if !z.IsZero() || z.IsSubnormal() || z.IsNormal() || z.IsNaN() || z.IsInf() {
		t.Fatalf("Zero misclassified: %+v", z)
	}

	sub, err := New(false, 0, 1, 8, 23, 127)
	if err != nil {
		t.Fatalf("New subnormal: %v", err)
	}
	if !sub.IsSubnormal() || sub.IsZero() || sub.IsNormal() {
		t.Fatalf("subnormal misclassified: %+v", sub)
	}

	norm, err := New(false, 100, 0, 8, 23, 127)
	if err != nil {
		t.Fatalf("New normal: %v", err)
	}
	if !norm.IsNormal() || norm.IsZero() || norm.IsSubnormal() || norm.IsNaN() || norm.IsInf() {
		t.Fatalf("normal misclassified: %+v", norm)
	}
}

func TestNaNAndInfClassifiers(t *testing.T) {
	n := NaN(8, 23, 127)
	if !n.IsNaN() || n.IsInf() {
		t.Fatalf("NaN misclassified: %+v", n)
	}
	inf := Inf(8, 23, 127, true)
	if !inf.IsInf() || inf.IsNaN() || !inf.Sign() {
		t.Fatalf("Inf misclassified: %+v", inf)
	}
}

func TestNewRejectsOutOfRangeFields(t *testing.T) {
	if _, err := New(false, 1<<8, 0, 8, 23, 127); err == nil {
		t.Fatal("New with out-of-range exp should error")
	}
	if _, err := New(false, 0, 1<<23, 8, 23, 127); err == nil {
		t.Fatal("New with out-of-range man should error")
	}
}

func TestTrueExpSubnormalVsNormal(t *testing.T) {
	sub, _ := New(false, 0, 1, 8, 23, 127)
	if got := sub.trueExp(); got != 1-127 {
		t.Fatalf("subnormal trueExp = %d, want %d", got, 1-127)
	}
	norm, _ := New(false, 127, 0, 8, 23, 127) // represents 1.0
	if got := norm.trueExp(); got != 0 {
		t.Fatalf("normal trueExp = %d, want 0", got)
	}
}
