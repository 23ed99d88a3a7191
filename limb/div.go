/*
   fixedmath limb kernel - division primitives.

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

// UnsignedDiv computes q, r such that n = q*d + r, 0 <= r < d, for unsigned
// multi-limb magnitudes n (nn limbs) and d (dn limbs), dn >= 1, d != 0.
// q must have room for nn-dn+1 limbs (zero-length when nn < dn), r for dn
// limbs.
//
// The divisor is normalized (shifted so its top limb's high bit is set),
// estimateQuotientDigit guesses each quotient limb from the top two limbs
// of the working window, and restoreCorrect's subtract-and-restore loop
// verifies and fixes that guess before it is accepted. The correction loop
// is unconditionally correct by construction (it is the textbook
// schoolbook long-division restoring step, the same shape math/big's own
// multi-word divider uses) regardless of how tight the initial estimate
// is, so estimateQuotientDigit only needs to be a reasonable guess for the
// overall result to be correct.
func UnsignedDiv[W Word](q, r, n, d []W) {
	dn := len(d)
	nn := len(n)

	if nn < dn {
		for i := range r {
			r[i] = 0
		}
		copy(r, n)
		return
	}

	if dn == 1 {
		divByLimb(q, r, n, d[0])
		return
	}

	shift := leadingZeros(d[dn-1])
	dNorm := make([]W, dn)
	if shift == 0 {
		copy(dNorm, d)
	} else {
		LeftShift(dNorm, d, uint(shift))
	}

	nNorm := make([]W, nn+1)
	if shift == 0 {
		copy(nNorm, n)
	} else {
		carry := LeftShift(nNorm[:nn], n, uint(shift))
		nNorm[nn] = carry
	}

	qn := nn - dn + 1
	if qn < 0 {
		qn = 0
	}
	for i := range q[:qn] {
		q[i] = 0
	}

	for j := qn - 1; j >= 0; j-- {
		window := nNorm[j : j+dn+1]
		qhat := estimateQuotientDigit(window, dNorm)
		qhat = restoreCorrect(window, dNorm, qhat)
		if qn > 0 {
			q[j] = qhat
		}
	}

	if shift == 0 {
		copy(r, nNorm[:dn])
	} else {
		RightShift(r, nNorm[:dn], uint(shift))
	}
}

// divByLimb handles the dn==1 case directly via the wide hardware divide,
// one limb of n at a time from the top down.
func divByLimb[W Word](q, r []W, n []W, d W) {
	var rem W
	for i := len(n) - 1; i >= 0; i-- {
		qi, ri := div2by1(rem, n[i], d)
		q[i] = qi
		rem = ri
	}
	r[0] = rem
	for i := 1; i < len(r); i++ {
		r[i] = 0
	}
}

// estimateQuotientDigit guesses the next quotient limb from the top two
// limbs of window against the top limb of the normalized divisor. The
// guess can be too large by at most 2 (the classic Knuth algorithm D
// bound); restoreCorrect below fixes that.
func estimateQuotientDigit[W Word](window, dNorm []W) W {
	top := len(window) - 1
	hi := window[top]
	lo := window[top-1]
	dtop := dNorm[len(dNorm)-1]
	if hi >= dtop {
		return ^W(0)
	}
	q, _ := div2by1(hi, lo, dtop)
	return q
}

// restoreCorrect subtracts qhat*dNorm from window in place and, while that
// leaves window negative (a borrow out of its top limb), decrements qhat
// and adds dNorm back until the add carries out of the top limb. This is
// the classic "add-back" step of schoolbook long division and is correct
// regardless of how qhat was estimated, which is exactly why it is relied
// on here as the safety net for estimateQuotientDigit's one-limb guess.
func restoreCorrect[W Word](window, dNorm []W, qhat W) W {
	borrow := mulSubWindow(window, dNorm, qhat)
	n := len(dNorm)
	for borrow != 0 {
		qhat--
		top := window[n]
		addBackWindow(window, dNorm)
		if window[n] < top {
			borrow = 0
		}
	}
	return qhat
}

// mulSubWindow computes window -= qhat*dNorm (dNorm extended with an
// implicit leading zero limb to match window's one-limb-wider length) and
// returns the borrow out of the top limb (nonzero means qhat was too
// large).
func mulSubWindow[W Word](window, dNorm []W, qhat W) W {
	if qhat == 0 {
		return 0
	}
	n := len(dNorm)
	borrow := SubmulByLimb(window[:n], dNorm, qhat)
	d := window[n] - borrow
	top := window[n]
	window[n] = d
	if d > top {
		return 1
	}
	return 0
}

// addBackWindow computes window += dNorm (one limb wider than dNorm),
// discarding the final carry out (it cancels the borrow introduced by the
// over-large qhat in mulSubWindow by construction).
func addBackWindow[W Word](window, dNorm []W) {
	n := len(dNorm)
	carry := InplaceAddSameLength(window[:n], dNorm)
	window[n] += carry
}
