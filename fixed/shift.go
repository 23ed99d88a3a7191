/*
   fixedmath fixed package - binary-point-relative shifts.

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

// Shl multiplies v by 2^n by moving the binary point n bits to the right:
// intBits grows by n and fracBits shrinks by n, bits and the underlying
// limbs are untouched. Per spec.md section 4.4 this is exact and free --
// the stored two's complement bit pattern already represents the shifted
// value once intBits/fracBits are reinterpreted.
func (v Value) Shl(n int) Value {
	return Value{bits: v.bits, intBits: v.intBits + n, limbs: v.limbs}
}

// Shr divides v by 2^n by moving the binary point n bits to the left:
// intBits shrinks by n and fracBits grows by n, same zero-cost reuse as
// Shl.
func (v Value) Shr(n int) Value {
	return Value{bits: v.bits, intBits: v.intBits - n, limbs: v.limbs}
}
