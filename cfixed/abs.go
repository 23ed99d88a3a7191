/*
   fixedmath cfixed package - magnitude.

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

package cfixed

import (
	"math"

	"github.com/rcornwell/fixedmath/fixed"
	"github.com/rcornwell/fixedmath/quant"
)

// newtonSqrtIters is the number of Newton-Raphson refinement steps Abs
// takes once seeded from a float64 estimate -- enough for the fixed-point
// domain to converge to the width of any layout this package supports,
// since each iteration roughly doubles the number of correct bits.
const newtonSqrtIters = 6

// Abs returns |v| = sqrt(re^2+im^2), a [SUPPLEMENT] apycfixed.cc itself
// doesn't implement complex magnitude with native fixed-point integer
// types, so this port computes the sum of squares exactly in the fixed
// domain (same width-growth rule as Mul/Add), seeds a Newton-Raphson square
// root from the float64 approximation, and refines it in the fixed domain
// before a single rounding Cast back down to v's own layout -- the same
// "exact intermediate, round once" discipline spec.md applies to xfloat.
func Abs(v Value) fixed.Value {
	sq := fixed.Add(fixed.Mul(v.real, v.real), fixed.Mul(v.imag, v.imag))
	if sq.IsZero() {
		z, _ := fixed.New(v.IntBits(), v.FracBits())
		return z
	}

	seed := math.Sqrt(sq.ToFloat64())
	workBits := sq.Bits()
	workInt := sq.IntBits()
	if workInt < 2 {
		workInt = 2
	}
	x, _ := fixed.FromFloat64(workInt, workBits-workInt, seed)

	for i := 0; i < newtonSqrtIters; i++ {
		quo, err := fixed.Quo(sq, x)
		if err != nil {
			break
		}
		// x_{n+1} = (x_n + sq/x_n) / 2; halving via Shr is the exact,
		// zero-cost reinterpretation fixed.Value.Shr documents, not a
		// rounding division.
		sum := fixed.Add(x, fixed.FromValue(x.IntBits(), x.FracBits(), quo))
		x = fixed.FromValue(workInt, workBits-workInt, sum.Shr(1))
	}

	return x.Cast(v.Bits(), v.IntBits(), quant.RND_CONV, quant.Wrap)
}
