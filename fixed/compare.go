/*
   fixedmath fixed package - comparisons.

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

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b,
// via the subtraction-sign idiom used throughout this module (spec.md
// section 4.4): Sub already aligns the two layouts' binary points, so the
// sign of a-b decides the order.
func Cmp(a, b Value) int {
	if Equal(a, b) {
		return 0
	}
	if Less(a, b) {
		return -1
	}
	return 1
}

// Less reports a < b.
func Less(a, b Value) bool {
	return Sub(a, b).IsNegative()
}

// Equal reports whether a and b represent the same real number, comparing
// after aligning their binary points (a and b need not share a layout).
func Equal(a, b Value) bool {
	return Sub(a, b).IsZero()
}
