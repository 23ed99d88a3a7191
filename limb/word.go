/*
   fixedmath limb kernel - word type and width dispatch.

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

// Package limb implements the multi-limb unsigned/two's-complement arithmetic
// kernel: add, subtract, shift, multiply and schoolbook long division
// (Knuth Algorithm D, with no precomputed 3/2 inverse) over fixed-width
// limb arrays. Routines here are oblivious to the bit
// layout a caller builds on top of the limbs (fixed-point, complex, or
// float mantissa); they only ever see raw []W slices.
package limb

import "math/bits"

// Word is the limb element type. Production code in this module instantiates
// every kernel function at uint64 (64-bit hosts); uint32 remains available
// so kernel tests can cross-check both widths agree on every input that fits
// either, per the "compile-time limb-size dispatch" contract: both sizes
// must yield identical observable results on inputs that fit either.
type Word interface {
	~uint32 | ~uint64
}

// Width reports the bit width of W: 32 or 64.
func Width[W Word]() int {
	var z W
	switch any(z).(type) {
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 0
	}
}

// Limbs reports ceil(bits/Width[W]()), the number of W-limbs needed to hold
// a value of the given bit width.
func Limbs[W Word](bitWidth int) int {
	w := Width[W]()
	return (bitWidth + w - 1) / w
}

// mulWide computes the full W*W -> 2W product of a and b. On 64-bit limbs
// this is math/bits.Mul64; on 32-bit limbs the product fits a native uint64
// so no widening primitive is needed at all. math/bits is the only portable
// 2W primitive available on a hosted Go toolchain -- there is no built-in
// 128-bit integer and no example in the retrieval pack ships a bigger-than-
// 64-bit multiply, so this is one of the few spots in the kernel that falls
// back to the standard library without a third-party alternative (see
// DESIGN.md).
func mulWide[W Word](a, b W) (hi, lo W) {
	if Width[W]() == 32 {
		p := uint64(a) * uint64(b)
		return W(p >> 32), W(p)
	}
	h, l := bits.Mul64(uint64(a), uint64(b))
	return W(h), W(l)
}

// div2by1 computes floor((hi*B+lo)/d), rem, where B = 2^Width[W]() and the
// precondition hi < d holds (so the quotient fits in W). This is the "wider
// primitive" spec.md assumes is unavailable on some hosts; Go's math/bits
// supplies it directly for 64-bit limbs, and 32-bit limbs fit natively in a
// uint64, so the half-limb recursive construction spec.md describes for
// platforms without a wide divide is never needed here.
func div2by1[W Word](hi, lo, d W) (q, r W) {
	if Width[W]() == 32 {
		n := (uint64(hi) << 32) | uint64(lo)
		return W(n / uint64(d)), W(n % uint64(d))
	}
	qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
	return W(qq), W(rr)
}

// leadingZeros returns the number of leading zero bits in x, 0..Width[W]().
func leadingZeros[W Word](x W) int {
	if Width[W]() == 32 {
		return bits.LeadingZeros32(uint32(x))
	}
	return bits.LeadingZeros64(uint64(x))
}

// Bit returns bit pos of a (0 or 1), treating positions beyond len(a)*Width
// as out of range (callers must size a to cover every position queried).
func Bit[W Word](a []W, pos int) W {
	w := Width[W]()
	idx := pos / w
	shift := uint(pos % w)
	return (a[idx] >> shift) & 1
}

// SetBit sets or clears bit pos of a in place.
func SetBit[W Word](a []W, pos int, bit W) {
	w := Width[W]()
	idx := pos / w
	shift := uint(pos % w)
	if bit != 0 {
		a[idx] |= W(1) << shift
	} else {
		a[idx] &^= W(1) << shift
	}
}

func isZero[W Word](a []W) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}
