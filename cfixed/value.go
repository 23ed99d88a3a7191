/*
   fixedmath cfixed package - complex fixed-point value type.

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

// Package cfixed implements complex arbitrary-precision fixed-point
// arithmetic (spec.md section 4.6): a Value is a pair of package fixed
// Values, real and imaginary, sharing one (bits, intBits) layout. Every
// operator is built directly on package fixed's already-generalized
// multi-limb arithmetic, the same way apycfixed.cc layers complex
// operations on top of its own scalar fixed-point kernel.
package cfixed

import (
	"fmt"
	"slices"

	"github.com/rcornwell/fixedmath/fixed"
	"github.com/rcornwell/fixedmath/quant"
)

// Value is an immutable complex fixed-point number: real and imag always
// share the same bits/intBits layout.
type Value struct {
	real fixed.Value
	imag fixed.Value
}

// Real returns v's real component.
func (v Value) Real() fixed.Value { return v.real }

// Imag returns v's imaginary component.
func (v Value) Imag() fixed.Value { return v.imag }

// Bits reports the total width shared by both components.
func (v Value) Bits() int { return v.real.Bits() }

// IntBits reports the integer width shared by both components.
func (v Value) IntBits() int { return v.real.IntBits() }

// FracBits reports the fractional width shared by both components.
func (v Value) FracBits() int { return v.real.FracBits() }

// IsZero reports whether both components are zero.
func (v Value) IsZero() bool { return v.real.IsZero() && v.imag.IsZero() }

// New builds a Value from independently-produced real and imaginary
// fixed.Value components, resizing imag to real's layout if they differ
// (mirroring apycfixed.cc's constructor, which always stores both parts at
// one shared layout).
func New(real, imag fixed.Value, qmode quant.Mode, vmode quant.Overflow) Value {
	if imag.Bits() != real.Bits() || imag.IntBits() != real.IntBits() {
		imag = imag.Cast(real.Bits(), real.IntBits(), qmode, vmode)
	}
	return Value{real: real, imag: imag}
}

// FromComponents builds a Value directly from two same-layout fixed.Values
// with no resizing, for callers that already guarantee matching layouts
// (e.g. the results of this package's own arithmetic).
func FromComponents(real, imag fixed.Value) Value {
	return Value{real: real, imag: imag}
}

// FromInt64 builds a Value representing the Gaussian integer re+im*i at the
// given layout.
func FromInt64(intBits, fracBits int, re, im int64) (Value, error) {
	r, err := fixed.FromInt64(intBits, fracBits, re)
	if err != nil {
		return Value{}, fmt.Errorf("cfixed.FromInt64: %w", err)
	}
	i, err := fixed.FromInt64(intBits, fracBits, im)
	if err != nil {
		return Value{}, fmt.Errorf("cfixed.FromInt64: %w", err)
	}
	return Value{real: r, imag: i}, nil
}

// FromComplex128 builds a Value from a native complex128 at the given
// layout.
func FromComplex128(intBits, fracBits int, c complex128) (Value, error) {
	r, err := fixed.FromFloat64(intBits, fracBits, real(c))
	if err != nil {
		return Value{}, fmt.Errorf("cfixed.FromComplex128: %w", err)
	}
	i, err := fixed.FromFloat64(intBits, fracBits, imag(c))
	if err != nil {
		return Value{}, fmt.Errorf("cfixed.FromComplex128: %w", err)
	}
	return Value{real: r, imag: i}, nil
}

// ToComplex128 approximates v as a native complex128.
func (v Value) ToComplex128() complex128 {
	return complex(v.real.ToFloat64(), v.imag.ToFloat64())
}

// String renders v the way Go formats a complex128 literal.
func (v Value) String() string {
	sign := "+"
	if v.imag.IsNegative() {
		sign = ""
	}
	return fmt.Sprintf("(%s%s%si)", v.real.String(), sign, v.imag.String())
}

// Equal reports whether a and b are bit-identical: same layout, same real
// and imaginary limbs component-wise. This is deliberately not
// apycfixed.cc's subtraction-based (a-b).is_zero() equality -- two values
// at different layouts that happen to represent the same number compare
// unequal here, matching this port's bit-identical equality decision.
func Equal(a, b Value) bool {
	if a.Bits() != b.Bits() || a.IntBits() != b.IntBits() {
		return false
	}
	return slices.Equal(a.real.RawLimbs(), b.real.RawLimbs()) &&
		slices.Equal(a.imag.RawLimbs(), b.imag.RawLimbs())
}
