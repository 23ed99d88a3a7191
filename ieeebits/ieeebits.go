/*
   fixedmath ieeebits package - IEEE-754 double bit-field access.

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

// Package ieeebits extracts and injects the sign, exponent and mantissa
// fields of a float64's IEEE-754 bit pattern. The custom-format float layer
// (xfloat) uses these as its interchange point with Go's native float64,
// the same mask-shift idiom the teacher's cpu_float.go uses against the
// System/370 hexadecimal floating point word, narrowed here to
// math.Float64bits/Float64frombits since Go already exposes the
// host-independent 64-bit encoding.
package ieeebits

import "math"

const (
	signMask uint64 = 1 << 63
	expMask  uint64 = 0x7FF << 52
	manMask  uint64 = (1 << 52) - 1

	// ExpBits is the width of float64's biased exponent field.
	ExpBits = 11
	// ManBits is the width of float64's stored mantissa field.
	ManBits = 52
	// Bias is float64's exponent bias.
	Bias = 1023
)

// Sign reports the sign bit of f (true means negative, including -0).
func Sign(f float64) bool {
	return math.Float64bits(f)&signMask != 0
}

// Exp returns the raw (biased) exponent field, 0..2047.
func Exp(f float64) uint64 {
	return (math.Float64bits(f) & expMask) >> ManBits
}

// Man returns the raw 52-bit stored mantissa field (no implicit bit).
func Man(f float64) uint64 {
	return math.Float64bits(f) & manMask
}

// Build assembles a float64 from a sign bit, raw biased exponent (0..2047)
// and raw 52-bit mantissa field.
func Build(sign bool, exp, man uint64) float64 {
	bits := (exp << ManBits) & expMask
	bits |= man & manMask
	if sign {
		bits |= signMask
	}
	return math.Float64frombits(bits)
}

// IsNaN reports whether f's bit pattern encodes a NaN (all-ones exponent,
// nonzero mantissa).
func IsNaN(f float64) bool {
	return Exp(f) == 0x7FF && Man(f) != 0
}

// IsInf reports whether f's bit pattern encodes +-infinity (all-ones
// exponent, zero mantissa).
func IsInf(f float64) bool {
	return Exp(f) == 0x7FF && Man(f) == 0
}

// IsSubnormal reports whether f is a nonzero subnormal (zero exponent,
// nonzero mantissa).
func IsSubnormal(f float64) bool {
	return Exp(f) == 0 && Man(f) != 0
}

// IsZero reports whether f's bit pattern is +0 or -0.
func IsZero(f float64) bool {
	return Exp(f) == 0 && Man(f) == 0
}
