/*
   fixedmath fixed package - arithmetic.

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

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rcornwell/fixedmath"
	"github.com/rcornwell/fixedmath/fpcontext"
	"github.com/rcornwell/fixedmath/limb"
	"github.com/rcornwell/fixedmath/quant"
)

// alignFracBits returns a and b's limbs re-expressed at a common number of
// fractional bits (the wider of the two), each sign-extended out to n
// limbs, so the raw two's complement integers can be added or subtracted
// directly.
func alignFracBits(a, b Value, fracBits, n int) ([]uint64, []uint64) {
	return shiftToFrac(a, fracBits, n), shiftToFrac(b, fracBits, n)
}

// shiftToFrac re-expresses v at fracBits fractional bits (fracBits >=
// v.FracBits(), an exact left shift) in n limbs.
func shiftToFrac(v Value, fracBits, n int) []uint64 {
	out := v.signExtended(n)
	shift := fracBits - v.FracBits()
	if shift > 0 {
		limb.LeftShiftN(out, out, shift)
	}
	return out
}

// Add returns a+b at the growth-table width res_int_bits =
// max(a.IntBits, b.IntBits)+1, res_frac_bits = max(a.FracBits, b.FracBits)
// (spec.md section 4.4), exact -- no precision is lost by this operation
// alone.
func Add(a, b Value) Value {
	fracBits := max(a.FracBits(), b.FracBits())
	intBits := max(a.IntBits(), b.IntBits()) + 1
	bits := intBits + fracBits
	n := limbCount(bits)

	la, lb := alignFracBits(a, b, fracBits, n)
	out := make([]uint64, n)
	limb.AddSameLength(out, la, lb)
	quant.SignExtend(out, bits)
	return Value{bits: bits, intBits: intBits, limbs: out}
}

// Sub returns a-b, same growth rule as Add.
func Sub(a, b Value) Value {
	fracBits := max(a.FracBits(), b.FracBits())
	intBits := max(a.IntBits(), b.IntBits()) + 1
	bits := intBits + fracBits
	n := limbCount(bits)

	la, lb := alignFracBits(a, b, fracBits, n)
	out := make([]uint64, n)
	limb.SubSameLength(out, la, lb)
	quant.SignExtend(out, bits)
	return Value{bits: bits, intBits: intBits, limbs: out}
}

// Neg returns -v at intBits+1 integer bits (spec.md section 4.4): the
// extra bit is needed because negating the most negative representable
// value would otherwise overflow back onto itself.
func Neg(v Value) Value {
	intBits := v.IntBits() + 1
	fracBits := v.FracBits()
	bits := intBits + fracBits
	n := limbCount(bits)

	out := v.signExtended(n)
	limb.NegateInplace(out)
	quant.SignExtend(out, bits)
	return Value{bits: bits, intBits: intBits, limbs: out}
}

// Abs returns the absolute value of v, same width growth as Neg.
func Abs(v Value) Value {
	if !v.IsNegative() {
		return FromValue(v.IntBits()+1, v.FracBits(), v)
	}
	return Neg(v)
}

// Mul returns a*b at res_int_bits = a.IntBits+b.IntBits, res_frac_bits =
// a.FracBits+b.FracBits (spec.md section 4.4), exact.
func Mul(a, b Value) Value {
	intBits := a.IntBits() + b.IntBits()
	fracBits := a.FracBits() + b.FracBits()
	bits := intBits + fracBits

	na := len(a.limbs) + 1
	nb := len(b.limbs) + 1
	ma := a.absLimbs(na)
	mb := b.absLimbs(nb)

	prod := make([]uint64, na+nb)
	limb.UnsignedMul(prod, ma, mb)

	negative := a.IsNegative() != b.IsNegative()
	n := limbCount(bits)
	out := make([]uint64, n)
	copy(out, prod)
	if negative {
		limb.NegateInplace(out)
	}
	quant.SignExtend(out, bits)
	return Value{bits: bits, intBits: intBits, limbs: out}
}

// Quo returns a/b at res_int_bits = a.IntBits+b.FracBits+1, res_frac_bits =
// a.FracBits+b.IntBits (spec.md section 4.4): the dividend is pre-scaled by
// b's full width before the integer division so the quotient carries
// a.FracBits+b.IntBits fractional bits of precision, with the result
// truncated toward zero (TRN_ZERO by magnitude, consistent with this
// package's two's complement division convention -- callers needing a
// rounded quotient should Cast the result afterward).
func Quo(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, fmt.Errorf("fixed.Quo: %w", fixedmath.ErrDivisionByZero)
	}
	intBits := a.IntBits() + b.FracBits() + 1
	fracBits := a.FracBits() + b.IntBits()
	bits := intBits + fracBits

	scaleShift := b.Bits()
	na := len(a.limbs) + limbCount(scaleShift) + 2
	ma := a.absLimbs(na)
	scaled := make([]uint64, na)
	limb.LeftShiftN(scaled, ma, scaleShift)

	nb := len(b.limbs) + 1
	mb := b.absLimbs(nb)

	qn := len(scaled) - len(mb) + 1
	if qn < 1 {
		qn = 1
	}
	q := make([]uint64, qn)
	r := make([]uint64, len(mb))
	limb.UnsignedDiv(q, r, scaled, mb)

	negative := a.IsNegative() != b.IsNegative()
	n := limbCount(bits)
	out := make([]uint64, n)
	copy(out, q)
	if negative {
		limb.NegateInplace(out)
	}
	quant.SignExtend(out, bits)
	return Value{bits: bits, intBits: intBits, limbs: out}, nil
}

// InnerProduct computes the sum of products a[i]*b[i]. With no fpcontext
// fixed-point accumulator override set, the sum is exact, at the natural
// growth-table width of a running Mul/Add chain. With one set, the first
// product and every running sum are cast into the accumulator's layout by
// FromValue (TRN quantization, Wrap overflow), so the result is truncated
// and wrapped to that layout. It returns an error wrapping
// fixedmath.ErrInvalidBits if a and b differ in length or either is empty.
func InnerProduct(a, b []Value) (Value, error) {
	if len(a) != len(b) {
		return Value{}, fmt.Errorf("fixed.InnerProduct: %w: len(a)=%d len(b)=%d", fixedmath.ErrInvalidBits, len(a), len(b))
	}
	if len(a) == 0 {
		return Value{}, fmt.Errorf("fixed.InnerProduct: %w: empty operands", fixedmath.ErrInvalidBits)
	}

	pairs := lo.Zip2(a, b)
	spec := fpcontext.FixedAccumulator()
	terms := lo.Map(pairs, func(p lo.Tuple2[Value, Value], _ int) Value {
		return Mul(p.A, p.B)
	})

	return lo.Reduce(terms[1:], func(acc Value, term Value, _ int) Value {
		acc = Add(acc, term)
		if spec != nil {
			acc = FromValue(spec.IntBits, spec.FracBits, acc)
		}
		return acc
	}, func() Value {
		acc := terms[0]
		if spec != nil {
			acc = FromValue(spec.IntBits, spec.FracBits, acc)
		}
		return acc
	}()), nil
}
