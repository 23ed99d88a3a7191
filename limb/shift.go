/*
   fixedmath limb kernel - shift primitives.

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

// LeftShift shifts src left by s bits (0 <= s < Width[W]()) into dst,
// zero-filling the bottom, and returns the W-s high bits that fell off the
// top (packed low in the returned limb). s == 0 is a plain copy with a zero
// return. Callers needing shifts >= Width[W]() decompose into a whole-limb
// skip plus a sub-limb LeftShift, per spec.
func LeftShift[W Word](dst, src []W, s uint) W {
	if s == 0 {
		copy(dst, src)
		return 0
	}
	w := uint(Width[W]())
	var prevHigh W
	for i := range src {
		v := src[i]
		dst[i] = (v << s) | prevHigh
		prevHigh = v >> (w - s)
	}
	return prevHigh
}

// RightShift shifts src right by s bits (0 <= s < Width[W]()) into dst,
// sign-agnostic (logical, zero-filling the top), and returns the s low bits
// that fell off the bottom, packed at the top of the returned limb.
func RightShift[W Word](dst, src []W, s uint) W {
	if s == 0 {
		copy(dst, src)
		return 0
	}
	w := uint(Width[W]())
	var prevLow W
	for i := len(src) - 1; i >= 0; i-- {
		v := src[i]
		dst[i] = (v >> s) | prevLow
		prevLow = v << (w - s)
	}
	return prevLow
}

// ArithRightShift is RightShift but sign-extends the top limb from bit
// signBit-1 of the vector's declared bit width before shifting, used by the
// fixed-point layer to realize an arithmetic (sign-preserving) shift of a
// two's-complement vector. bitWidth is the number of significant bits (the
// vector may be wider, already sign-extended per the invariant in spec.md
// section 3).
func ArithRightShift[W Word](dst, src []W, s uint, bitWidth int) W {
	if s == 0 {
		copy(dst, src)
		return 0
	}
	w := Width[W]()
	negative := SignBit(src, bitWidth)
	var fill W
	if negative {
		fill = ^W(0)
	}
	out := RightShift(dst, src, s)
	// Fill the vacated high bits of the top limb with the sign.
	topIdx := len(dst) - 1
	highBitInTop := uint((bitWidth - 1) % w)
	mask := ^W(0) << (highBitInTop + 1 - s)
	if s > highBitInTop+1 {
		mask = ^W(0)
	}
	if negative {
		dst[topIdx] |= mask & fill
	}
	return out
}

// SignBit reports the sign (bit bitWidth-1) of a limb vector laid out per
// spec.md section 3 (two's complement, sign-extended above bitWidth-1).
func SignBit[W Word](a []W, bitWidth int) bool {
	w := Width[W]()
	idx := (bitWidth - 1) / w
	pos := uint((bitWidth - 1) % w)
	return (a[idx]>>pos)&1 != 0
}

// LeftShiftN performs a logical left shift of src by n bits (any
// non-negative n, not just n < Width[W]()) into dst, zero-filling the
// bottom and dropping any bits that shift beyond dst's top limb. Safe to
// call with dst and src aliased: the loop runs from the top limb down, and
// every source index it reads is always <= the destination index it is
// about to overwrite, so nothing is clobbered before it is read.
func LeftShiftN[W Word](dst, src []W, n int) {
	w := Width[W]()
	limbSkip := n / w
	bitSkip := uint(n % w)
	nlimb := len(src)
	for i := len(dst) - 1; i >= 0; i-- {
		srcIdx := i - limbSkip
		var lo, hi W
		if srcIdx >= 0 && srcIdx < nlimb {
			lo = src[srcIdx]
		}
		if srcIdx-1 >= 0 && srcIdx-1 < nlimb {
			hi = src[srcIdx-1]
		}
		if bitSkip == 0 {
			dst[i] = lo
		} else {
			dst[i] = (lo << bitSkip) | (hi >> (uint(w) - bitSkip))
		}
	}
}

// ArithRightShiftN performs an arithmetic right shift of src by n bits (any
// non-negative n, not just n < Width[W]()) into dst, decomposing into a
// whole-limb skip plus a sub-limb shift per spec.md's note that shifts >= W
// are handled this way by callers. src is sign-extended as needed (n may
// exceed bitWidth entirely, in which case dst is filled with the sign).
func ArithRightShiftN[W Word](dst, src []W, n, bitWidth int) {
	w := Width[W]()
	negative := SignBit(src, bitWidth)
	var fill W
	if negative {
		fill = ^W(0)
	}
	if n >= bitWidth {
		for i := range dst {
			dst[i] = fill
		}
		return
	}
	limbSkip := n / w
	bitSkip := uint(n % w)
	nlimb := len(src)
	for i := range dst {
		srcIdx := i + limbSkip
		lo := fill
		if srcIdx < nlimb {
			lo = src[srcIdx]
		}
		hi := fill
		if srcIdx+1 < nlimb {
			hi = src[srcIdx+1]
		}
		if bitSkip == 0 {
			dst[i] = lo
		} else {
			dst[i] = (lo >> bitSkip) | (hi << (uint(w) - bitSkip))
		}
	}
}
