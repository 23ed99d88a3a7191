/*
   fixedmath xfloat package - float64 interop.

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
	"fmt"

	"github.com/rcornwell/fixedmath"
	"github.com/rcornwell/fixedmath/ieeebits"
)

// nativeFormat is the (exp_bits, man_bits, bias) triple float64 itself uses.
const (
	nativeExpBits = ieeebits.ExpBits
	nativeManBits = ieeebits.ManBits
	nativeBias    = ieeebits.Bias
)

// FromFloat64 builds a Value in the given format from a float64, routing
// the bit decomposition through package ieeebits and, when the target
// format isn't float64's own, rounding through the same Cast every other
// xfloat operator uses.
func FromFloat64(expBits, manBits, bias int, f float64) (Value, error) {
	if expBits < 1 || manBits < 1 {
		return Value{}, fmt.Errorf("xfloat.FromFloat64: %w: expBits=%d manBits=%d", fixedmath.ErrInvalidBits, expBits, manBits)
	}

	native := Value{
		sign:    ieeebits.Sign(f),
		exp:     ieeebits.Exp(f),
		man:     ieeebits.Man(f),
		expBits: nativeExpBits,
		manBits: nativeManBits,
		bias:    nativeBias,
	}

	if expBits == nativeExpBits && manBits == nativeManBits && bias == nativeBias {
		return native, nil
	}
	return Cast(native, expBits, manBits, bias, defaultQuantMode()), nil
}

// ToFloat64 approximates v as a float64, Casting through v's own format
// into float64's (11, 52, 1023) format when they differ and rebuilding the
// bit pattern via ieeebits.Build.
func (v Value) ToFloat64() float64 {
	native := v
	if v.expBits != nativeExpBits || v.manBits != nativeManBits || v.bias != nativeBias {
		native = Cast(v, nativeExpBits, nativeManBits, nativeBias, defaultQuantMode())
	}
	return ieeebits.Build(native.sign, native.exp, native.man)
}
