/*
   fixedmath xfloat package - custom-format floating-point value type.

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

// Package xfloat implements an arbitrary-format binary floating-point value
// (spec.md section 4.7): a sign bit, a biased exponent, a stored mantissa
// (no hidden bit), and the (exp_bits, man_bits, bias) triple describing the
// format, generalizing the System/370 hexadecimal-float idiom in the
// teacher's cpu_float.go (normalize, operate on a wide fixed-point
// mantissa, quantize once) from that fixed base-16/56-bit format to an
// arbitrary binary exp/man width. Every arithmetic entry point computes its
// intermediate through package fixed and rounds it exactly once through
// package quant, mirroring apyfloat.cc's discipline. The intermediate is
// exact for Add, Sub, Mul, Cast and Pown with n >= 0; Quo's quotient is
// truncated 64 bits below its mantissa, and Pown with n < 0 and Sqrt round
// an intermediate that is itself truncated.
package xfloat

import (
	"fmt"

	"github.com/rcornwell/fixedmath"
)

// Value is an immutable custom-format floating-point number: sign is true
// for negative (including -0), exp is the raw biased exponent field
// (0..2^expBits-1), man is the raw stored mantissa field (0..2^manBits-1,
// no implicit leading 1), and expBits/manBits/bias describe the format the
// same way IEEE-754 describes float32/float64.
type Value struct {
	sign bool
	exp  uint64
	man  uint64

	expBits int
	manBits int
	bias    int
}

// Sign reports the sign bit.
func (v Value) Sign() bool { return v.sign }

// RawExp reports the raw (biased) exponent field.
func (v Value) RawExp() uint64 { return v.exp }

// RawMan reports the raw stored mantissa field (no hidden bit).
func (v Value) RawMan() uint64 { return v.man }

// ExpBits reports the exponent field width.
func (v Value) ExpBits() int { return v.expBits }

// ManBits reports the stored mantissa field width.
func (v Value) ManBits() int { return v.manBits }

// Bias reports the exponent bias.
func (v Value) Bias() int { return v.bias }

// IEEEBias returns the IEEE-754-style bias for an exp_bits-wide exponent
// field: 2^(exp_bits-1) - 1, the value every standard binary format uses
// and the default spec.md section 4.7's Cast falls back to when a caller
// doesn't specify one.
func IEEEBias(expBits int) int {
	return (1 << uint(expBits-1)) - 1
}

func (v Value) maxExp() uint64 {
	return (uint64(1) << uint(v.expBits)) - 1
}

func maxExpOf(expBits int) uint64 {
	return (uint64(1) << uint(expBits)) - 1
}

// IsZero reports whether v is +0 or -0.
func (v Value) IsZero() bool { return v.exp == 0 && v.man == 0 }

// IsSubnormal reports whether v is a nonzero subnormal (zero exponent,
// nonzero mantissa).
func (v Value) IsSubnormal() bool { return v.exp == 0 && v.man != 0 }

// IsNormal reports whether v is a normal (non-zero, non-subnormal,
// non-infinite, non-NaN) value.
func (v Value) IsNormal() bool {
	return v.exp != 0 && v.exp != v.maxExp()
}

// IsNaN reports whether v's bit pattern encodes a NaN.
func (v Value) IsNaN() bool { return v.exp == v.maxExp() && v.man != 0 }

// IsInf reports whether v's bit pattern encodes +-infinity.
func (v Value) IsInf() bool { return v.exp == v.maxExp() && v.man == 0 }

// New validates and builds a Value from explicit fields.
func New(sign bool, exp, man uint64, expBits, manBits, bias int) (Value, error) {
	if expBits < 1 || manBits < 1 {
		return Value{}, fmt.Errorf("xfloat.New: %w: expBits=%d manBits=%d", fixedmath.ErrInvalidBits, expBits, manBits)
	}
	if exp > maxExpOf(expBits) {
		return Value{}, fmt.Errorf("xfloat.New: %w: exp=%d out of range for expBits=%d", fixedmath.ErrInvalidBits, exp, expBits)
	}
	if man >= (uint64(1) << uint(manBits)) {
		return Value{}, fmt.Errorf("xfloat.New: %w: man=%d out of range for manBits=%d", fixedmath.ErrInvalidBits, man, manBits)
	}
	return Value{sign: sign, exp: exp, man: man, expBits: expBits, manBits: manBits, bias: bias}, nil
}

// Zero returns the signed zero of the given format.
func Zero(expBits, manBits, bias int, sign bool) Value {
	return Value{sign: sign, expBits: expBits, manBits: manBits, bias: bias}
}

// NaN returns a quiet NaN of the given format (sign is conventionally
// false; callers comparing NaNs should use IsNaN, never ==).
func NaN(expBits, manBits, bias int) Value {
	return Value{exp: maxExpOf(expBits), man: 1, expBits: expBits, manBits: manBits, bias: bias}
}

// Inf returns signed infinity of the given format.
func Inf(expBits, manBits, bias int, sign bool) Value {
	return Value{sign: sign, exp: maxExpOf(expBits), expBits: expBits, manBits: manBits, bias: bias}
}

// hiddenMan returns the mantissa with its implicit leading bit restored: for
// normal values that's the hidden 1, for subnormals there is no hidden bit
// and this is just man itself -- both cases share the identity that the
// represented magnitude is hiddenMan(v) * 2^(trueExp(v) - manBits).
func (v Value) hiddenMan() uint64 {
	if v.exp == 0 {
		return v.man
	}
	return v.man | (uint64(1) << uint(v.manBits))
}

// trueExp returns the unbiased exponent a finite, nonzero v represents.
func (v Value) trueExp() int {
	if v.exp == 0 {
		return 1 - v.bias
	}
	return int(v.exp) - v.bias
}

// String renders v as a decimal string via its float64 approximation,
// tagging NaN/Inf the way Go's own float formatting does.
func (v Value) String() string {
	switch {
	case v.IsNaN():
		return "NaN"
	case v.IsInf():
		if v.sign {
			return "-Inf"
		}
		return "+Inf"
	default:
		return fmt.Sprintf("%v", v.ToFloat64())
	}
}
