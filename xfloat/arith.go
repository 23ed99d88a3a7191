/*
   fixedmath xfloat package - arithmetic.

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
	"github.com/rcornwell/fixedmath/fixed"
	"github.com/rcornwell/fixedmath/quant"
)

func isTRNFamily(m quant.Mode) bool {
	switch m {
	case quant.TRN, quant.TRN_INF, quant.TRN_ZERO, quant.TRN_MAG, quant.TRN_AWAY:
		return true
	default:
		return false
	}
}

func compareMag(a, b Value) int {
	ea, eb := a.trueExp(), b.trueExp()
	if ea != eb {
		if ea > eb {
			return 1
		}
		return -1
	}
	ha, hb := a.hiddenMan(), b.hiddenMan()
	switch {
	case ha == hb:
		return 0
	case ha > hb:
		return 1
	default:
		return -1
	}
}

func one(expBits, manBits, bias int) Value {
	return Value{exp: uint64(bias), expBits: expBits, manBits: manBits, bias: bias}
}

// Neg flips v's sign bit (including on zero, infinity and NaN, the same as
// IEEE-754 negation).
func Neg(v Value) Value {
	v.sign = !v.sign
	return v
}

// Add returns a+b, per spec.md section 4.7: result format is the
// elementwise max of each operand's (exp_bits, man_bits), biased the
// standard way for that exponent width. Special operands (NaN, infinity,
// zero) short-circuit before the shared normalize-and-round core runs.
func Add(a, b Value) Value {
	expBits := max(a.expBits, b.expBits)
	manBits := max(a.manBits, b.manBits)
	bias := IEEEBias(expBits)
	qmode := defaultQuantMode()

	if a.IsNaN() || b.IsNaN() {
		return NaN(expBits, manBits, bias)
	}
	if a.IsInf() || b.IsInf() {
		switch {
		case a.IsInf() && b.IsInf():
			if a.sign != b.sign {
				return NaN(expBits, manBits, bias)
			}
			return Inf(expBits, manBits, bias, a.sign)
		case a.IsInf():
			return Inf(expBits, manBits, bias, a.sign)
		default:
			return Inf(expBits, manBits, bias, b.sign)
		}
	}
	if a.IsZero() {
		return Cast(b, expBits, manBits, bias, qmode)
	}
	if b.IsZero() {
		return Cast(a, expBits, manBits, bias, qmode)
	}

	x, y := a, b
	if compareMag(x, y) < 0 {
		x, y = y, x
	}
	delta := x.trueExp() - y.trueExp()

	xm := mantissaFixed(x)
	ym := mantissaFixed(y)
	switch {
	case delta > 0:
		ym = ym.Shr(delta)
	case delta < 0:
		ym = ym.Shl(-delta)
	}

	sign := x.sign
	var sum fixed.Value
	if x.sign == y.sign {
		sum = fixed.Add(xm, ym)
	} else {
		sum = fixed.Sub(xm, ym)
		if sum.IsNegative() {
			sum = fixed.Neg(sum)
			sign = y.sign
		}
	}
	if sum.IsZero() {
		// Opposite-sign equal-magnitude cancellation: +0 under every
		// rounding mode except the truncating family, which round the
		// cancelled result toward -0 (spec.md section 4.7, section 9).
		sign = isTRNFamily(qmode)
	}

	return normalizeAndRound(sum, x.trueExp(), sign, expBits, manBits, bias, qmode)
}

// Sub returns a-b, defined as a + (-b) per spec.md section 4.7.
func Sub(a, b Value) Value {
	return Add(a, Neg(b))
}

// Mul returns a*b.
func Mul(a, b Value) Value {
	expBits := max(a.expBits, b.expBits)
	manBits := max(a.manBits, b.manBits)
	bias := IEEEBias(expBits)
	qmode := defaultQuantMode()
	sign := a.sign != b.sign

	if a.IsNaN() || b.IsNaN() {
		return NaN(expBits, manBits, bias)
	}
	if (a.IsInf() && b.IsZero()) || (b.IsInf() && a.IsZero()) {
		return NaN(expBits, manBits, bias)
	}
	if a.IsInf() || b.IsInf() {
		return Inf(expBits, manBits, bias, sign)
	}
	if a.IsZero() || b.IsZero() {
		return Zero(expBits, manBits, bias, sign)
	}

	tentativeExp := a.trueExp() + b.trueExp()
	prod := fixed.Mul(mantissaFixed(a), mantissaFixed(b))
	return normalizeAndRound(prod, tentativeExp, sign, expBits, manBits, bias, qmode)
}

// Quo returns a/b.
func Quo(a, b Value) Value {
	expBits := max(a.expBits, b.expBits)
	manBits := max(a.manBits, b.manBits)
	bias := IEEEBias(expBits)
	qmode := defaultQuantMode()
	sign := a.sign != b.sign

	if a.IsNaN() || b.IsNaN() {
		return NaN(expBits, manBits, bias)
	}
	if (a.IsInf() && b.IsInf()) || (a.IsZero() && b.IsZero()) {
		return NaN(expBits, manBits, bias)
	}
	if a.IsInf() {
		return Inf(expBits, manBits, bias, sign)
	}
	if b.IsInf() {
		return Zero(expBits, manBits, bias, sign)
	}
	if a.IsZero() {
		return Zero(expBits, manBits, bias, sign)
	}
	if b.IsZero() {
		return Inf(expBits, manBits, bias, sign)
	}

	tentativeExp := a.trueExp() - b.trueExp()
	am := mantissaFixed(a)
	am = fixed.FromValue(am.IntBits(), am.FracBits()+64, am)
	q, err := fixed.Quo(am, mantissaFixed(b))
	if err != nil {
		return NaN(expBits, manBits, bias)
	}
	return normalizeAndRound(q, tentativeExp, sign, expBits, manBits, bias, qmode)
}

// Pown computes v^n by repeated fixed-point multiplication of the
// hidden-one mantissa (spec.md section 4.7), quantizing only once at the
// end. 0^0 = 1, 0^negative = +-Inf, Inf^positive = Inf, Inf^negative = 0,
// with the result sign equal to v.sign when n is odd, else positive.
func Pown(v Value, n int) Value {
	expBits, manBits, bias := v.expBits, v.manBits, v.bias
	qmode := defaultQuantMode()
	sign := v.sign && n%2 != 0

	if v.IsNaN() {
		return NaN(expBits, manBits, bias)
	}
	if v.IsZero() {
		switch {
		case n == 0:
			return one(expBits, manBits, bias)
		case n < 0:
			return Inf(expBits, manBits, bias, sign)
		default:
			return Zero(expBits, manBits, bias, sign)
		}
	}
	if v.IsInf() {
		switch {
		case n == 0:
			return one(expBits, manBits, bias)
		case n > 0:
			return Inf(expBits, manBits, bias, sign)
		default:
			return Zero(expBits, manBits, bias, sign)
		}
	}
	if n == 0 {
		return one(expBits, manBits, bias)
	}

	neg := n < 0
	absN := n
	if neg {
		absN = -n
	}

	mant := mantissaFixed(v)
	acc := mant
	for i := 1; i < absN; i++ {
		acc = fixed.Mul(acc, mant)
	}
	tentativeExp := v.trueExp() * absN

	if neg {
		one64, _ := fixed.FromInt64(2, acc.FracBits(), 1)
		recip, err := fixed.Quo(one64, acc)
		if err != nil {
			return NaN(expBits, manBits, bias)
		}
		acc = recip
		tentativeExp = -tentativeExp
	}

	return normalizeAndRound(acc, tentativeExp, sign, expBits, manBits, bias, qmode)
}

// Cast re-expresses v in a new (exp_bits, man_bits, bias) format, applying
// qmode to round away any mantissa precision the new format can't hold
// (spec.md section 4.7's Cast algorithm): NaN/Inf/zero short-circuit, and
// every finite value is normalized and rounded exactly once through the
// same core Add/Sub/Mul/Quo/Pown share.
func Cast(v Value, expBits, manBits, bias int, qmode quant.Mode) Value {
	switch {
	case v.IsNaN():
		return NaN(expBits, manBits, bias)
	case v.IsInf():
		return Inf(expBits, manBits, bias, v.sign)
	case v.IsZero():
		return Zero(expBits, manBits, bias, v.sign)
	default:
		return normalizeAndRound(mantissaFixed(v), v.trueExp(), v.sign, expBits, manBits, bias, qmode)
	}
}
