/*
   fixedmath quant package - two's complement quantization.

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

package quant

import "github.com/rcornwell/fixedmath/limb"

// GuardSticky extracts the rounding bits from the d lowest bits of src (a
// two's complement limb vector) that are about to be discarded: G is the
// most significant of those bits (the round bit, at position d-1) and T is
// the logical OR of every bit below it. d must be >= 1.
func GuardSticky[W limb.Word](src []W, d int) (g, t bool) {
	if d <= 0 {
		return false, false
	}
	g = limb.Bit(src, d-1) != 0
	rem := d - 1
	if rem <= 0 {
		return g, false
	}
	w := limb.Width[W]()
	fullLimbs := rem / w
	for i := 0; i < fullLimbs && i < len(src); i++ {
		if src[i] != 0 {
			return g, true
		}
	}
	partialBits := rem % w
	if partialBits > 0 && fullLimbs < len(src) {
		mask := (W(1) << uint(partialBits)) - 1
		if src[fullLimbs]&mask != 0 {
			return g, true
		}
	}
	return g, false
}

// Quantize shifts the binary point of v (a two's complement limb vector,
// sign-extended across bitWidth significant bits, len(v) limbs wide) by
// delta = new_frac_bits - old_frac_bits, applying the rounding correction
// named by mode when delta < 0 (bits are being discarded). The result is
// written back into v in place. No overflow handling happens here --
// ApplyOverflow is the following pipeline stage.
func Quantize[W limb.Word](v []W, delta, bitWidth int, mode Mode, src *Source) {
	if delta >= 0 {
		limb.LeftShiftN(v, v, delta)
		return
	}
	d := -delta
	if d >= bitWidth {
		// Flush to zero: the conservative resolution of the open question
		// on shifting an amount that discards every stored bit.
		for i := range v {
			v[i] = 0
		}
		return
	}

	negative := limb.SignBit(v, bitWidth)
	g, t := GuardSticky(v, d)
	l := limb.Bit(v, d) != 0 // LSB of the floored quotient, for tie-to-even/odd

	var window []W
	if mode == STOCH_WEIGHTED {
		window = lowBitsWindow(v, d)
	}

	limb.ArithRightShiftN(v, v, d, bitWidth)

	if roundUp(mode, negative, g, t, l, d, window, src) {
		limb.InplaceAddSingle(v, 1)
	}
	switch mode {
	case JAM:
		limb.SetBit(v, 0, 1)
	case JAM_UNBIASED:
		if g || t {
			limb.SetBit(v, 0, 1)
		}
	}
}

// roundUp reports whether the floored (already-shifted) quotient in v
// should be nudged one ULP toward +infinity, per the named mode. The
// derivation for each two's-complement mode: asr already computes
// floor(v/2^d) exactly, so g/t/l fully characterize the discarded
// remainder's relation to the halfway point, and "round up" always means
// "add 1 to the floored quotient" regardless of the quotient's own sign.
func roundUp[W limb.Word](mode Mode, negative, g, t, l bool, d int, window []W, src *Source) bool {
	switch mode {
	case TRN, TRN_MAG:
		// Two's complement asr already truncates toward -infinity, which
		// is simultaneously "toward 0" for positives and "away from 0"
		// for negatives -- exactly TRN_MAG's contract, so no correction.
		return false
	case TRN_INF:
		return g || t
	case TRN_ZERO:
		return negative && (g || t)
	case TRN_AWAY:
		return !negative && (g || t)
	case RND:
		return g
	case RND_ZERO:
		return g && (t || negative)
	case RND_INF:
		return g && (t || !negative)
	case RND_MIN_INF:
		return g && t
	case RND_CONV:
		return g && (t || l)
	case RND_CONV_ODD:
		return g && (t || !l)
	case JAM, JAM_UNBIASED:
		return false
	case STOCH_WEIGHTED:
		return stochWeighted(window, d, src)
	case STOCH_EQUAL:
		return (g || t) && src.Bool()
	default:
		return false
	}
}

// lowBitsWindow copies the d lowest bits of v (before the floor-shift) into
// a freshly allocated, zero-padded limb vector sized to leave room for one
// bit beyond position d-1, so that summing two such windows can never
// overflow past the vector: the carry out of bit d-1 always lands cleanly
// inside bit d of the result.
func lowBitsWindow[W limb.Word](v []W, d int) []W {
	w := limb.Width[W]()
	nw := d/w + 1
	window := make([]W, nw)
	for i := 0; i < d; i++ {
		limb.SetBit(window, i, limb.Bit(v, i))
	}
	return window
}

// randomWindow draws d uniform random bits into a vector shaped like
// lowBitsWindow's output.
func randomWindow[W limb.Word](d int, src *Source) []W {
	w := limb.Width[W]()
	nw := d/w + 1
	window := make([]W, nw)
	for i := 0; i < nw; i++ {
		lo := i * w
		if lo >= d {
			break
		}
		bits := d - lo
		if bits > w {
			bits = w
		}
		window[i] = W(src.Bits(bits))
	}
	return window
}

// stochWeighted implements STOCH_WEIGHTED: add a uniform random d-bit value
// to the discarded remainder and report whether that addition carries past
// bit d-1, i.e. whether it would have bumped the floored quotient by one.
// This reproduces "add random, then floor" exactly rather than approximating
// it from the collapsed guard/sticky pair, since the probability of
// carrying depends on the remainder's precise magnitude, not just whether
// it is zero.
func stochWeighted[W limb.Word](window []W, d int, src *Source) bool {
	rnd := randomWindow[W](d, src)
	sum := make([]W, len(window))
	limb.AddSameLength(sum, window, rnd)
	return limb.Bit(sum, d) != 0
}
