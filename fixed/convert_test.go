/*
   fixedmath fixed package - float64 conversion tests.

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

func TestToFloat64Zero(t *testing.T) {
	v, _ := New(8, 8)
	if got := v.ToFloat64(); got != 0 {
		t.Fatalf("ToFloat64(0) = %v, want 0", got)
	}
}

func TestToFloat64RoundTripsSimpleFraction(t *testing.T) {
	for _, f := range []float64{1, -1, 0.25, -0.25, 127.5, -128} {
		v, err := FromFloat64(8, 8, f)
		if err != nil {
			t.Fatalf("FromFloat64(%v): %v", f, err)
		}
		if got := v.ToFloat64(); got != f {
			t.Fatalf("round trip %v -> %v, want %v", f, got, f)
		}
	}
}

func TestToFloat64LargeIntBits(t *testing.T) {
	v, err := FromInt64(32, 0, 1<<20)
	if err != nil {
		t.Fatalf("FromInt64: %v", err)
	}
	if got := v.ToFloat64(); got != float64(int64(1)<<20) {
		t.Fatalf("ToFloat64 = %v, want %v", got, float64(int64(1)<<20))
	}
}
