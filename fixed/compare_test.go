/*
   fixedmath fixed package - comparison tests.

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

func TestEqualAcrossLayouts(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 3)
	b := mustFromInt64(t, 8, 8, 3)
	if !Equal(a, b) {
		t.Fatalf("Equal(3.0 in Q4.4, 3.0 in Q8.8) = false, want true")
	}
}

func TestLessAndCmp(t *testing.T) {
	a := mustFromInt64(t, 4, 4, 2)
	b := mustFromInt64(t, 4, 4, 3)
	if !Less(a, b) {
		t.Fatalf("Less(2,3) = false, want true")
	}
	if Less(b, a) {
		t.Fatalf("Less(3,2) = true, want false")
	}
	if Cmp(a, b) != -1 {
		t.Fatalf("Cmp(2,3) = %d, want -1", Cmp(a, b))
	}
	if Cmp(b, a) != 1 {
		t.Fatalf("Cmp(3,2) = %d, want 1", Cmp(b, a))
	}
	if Cmp(a, a) != 0 {
		t.Fatalf("Cmp(2,2) = %d, want 0", Cmp(a, a))
	}
}

func TestCompareNegativeValues(t *testing.T) {
	a := mustFromInt64(t, 4, 4, -5)
	b := mustFromInt64(t, 4, 4, -1)
	if !Less(a, b) {
		t.Fatalf("Less(-5,-1) = false, want true")
	}
}
