/*
   fixedmath xfloat package - square root.

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

import (
	"math"

	"github.com/rcornwell/fixedmath/fixed"
)

// sqrtNewtonIters mirrors cfixed.newtonSqrtIters: each iteration roughly
// doubles the number of correct bits, so a handful suffice for any layout
// this package supports.
const sqrtNewtonIters = 6

// Sqrt returns sqrt(v), a [SUPPLEMENT]: apyfloat.cc seeds its Newton
// refinement by halving the unbiased exponent (sqrt(m*2^e) = sqrt(m or 2m) *
// 2^(e/2), picking whichever of m, 2m keeps e/2 exact) and iterating in the
// mantissa's fixed-point domain, then lets the shared normalize-and-round
// core apply the final rounding step. Each Newton step truncates its
// iterate (TRN) to 2 integer and workBits-2 fractional bits, so the value
// rounded is an approximation of the exact root.
// Sqrt of a negative, non-zero operand is NaN; sqrt(+-0) is +-0; sqrt(+Inf)
// is +Inf; sqrt(-Inf) is NaN.
func Sqrt(v Value) Value {
	expBits, manBits, bias := v.expBits, v.manBits, v.bias

	if v.IsNaN() {
		return v
	}
	if v.IsZero() {
		return v
	}
	if v.sign {
		return NaN(expBits, manBits, bias)
	}
	if v.IsInf() {
		return v
	}

	qmode := defaultQuantMode()
	mant := mantissaFixed(v)
	te := v.trueExp()
	if te%2 != 0 {
		mant = mant.Shl(1)
		te--
	}
	halfExp := te / 2

	workBits := mant.Bits() + 4
	seed := math.Sqrt(mant.ToFloat64())
	x, _ := fixed.FromFloat64(2, workBits-2, seed)

	for i := 0; i < sqrtNewtonIters; i++ {
		quo, err := fixed.Quo(mant, x)
		if err != nil {
			break
		}
		sum := fixed.Add(x, fixed.FromValue(x.IntBits(), x.FracBits(), quo))
		x = fixed.FromValue(2, workBits-2, sum.Shr(1))
	}

	return normalizeAndRound(x, halfExp, false, expBits, manBits, bias, qmode)
}
