/*
   fixedmath limb kernel - add/subtract primitives.

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

package limb

// AddSameLength computes dst = a + b over n = len(a) = len(b) = len(dst)
// limbs and returns the carry out of the top limb. Each limb chains two
// carry-out checks (a+b, then +carry-in) via unsigned wraparound comparison
// -- the same ripple-through-registers shape as the teacher's multi-word
// register add, just generalized to n limbs instead of a fixed pair.
func AddSameLength[W Word](dst, a, b []W) W {
	var carry W
	for i := range a {
		sum := a[i] + b[i]
		c1 := W(0)
		if sum < a[i] {
			c1 = 1
		}
		sum2 := sum + carry
		c2 := W(0)
		if sum2 < sum {
			c2 = 1
		}
		dst[i] = sum2
		carry = c1 | c2
	}
	return carry
}

// InplaceAddSameLength computes a += b over n limbs, returns carry out.
func InplaceAddSameLength[W Word](a, b []W) W {
	return AddSameLength(a, a, b)
}

// SubSameLength computes dst = a - b over n limbs, returns the borrow out
// (1 if a < b treating both as unsigned n-limb magnitudes, else 0).
func SubSameLength[W Word](dst, a, b []W) W {
	var borrow W
	for i := range a {
		d1 := a[i] - b[i]
		b1 := W(0)
		if d1 > a[i] {
			b1 = 1
		}
		d2 := d1 - borrow
		b2 := W(0)
		if d2 > d1 {
			b2 = 1
		}
		dst[i] = d2
		borrow = b1 | b2
	}
	return borrow
}

// InplaceSubSameLength computes a -= b over n limbs, returns borrow out.
func InplaceSubSameLength[W Word](a, b []W) W {
	return SubSameLength(a, a, b)
}

// ReverseSubSameLength computes dst = b - a over n limbs, returns borrow out.
func ReverseSubSameLength[W Word](dst, a, b []W) W {
	return SubSameLength(dst, b, a)
}

// InplaceAddSingle ripples a single-limb addend c through the n limbs of a,
// returning the final carry out.
func InplaceAddSingle[W Word](a []W, c W) W {
	carry := c
	for i := range a {
		if carry == 0 {
			break
		}
		sum := a[i] + carry
		if sum < a[i] {
			carry = 1
		} else {
			carry = 0
		}
		a[i] = sum
	}
	return carry
}

// NegateInplace two's-complements the n-limb vector a in place (bitwise NOT
// then +1), returning the carry out of the final +1 -- used to form the
// absolute value of a signed vector known to be negative.
func NegateInplace[W Word](a []W) W {
	for i := range a {
		a[i] = ^a[i]
	}
	return InplaceAddSingle(a, 1)
}
