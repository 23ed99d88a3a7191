/*
   fixedmath - Error taxonomy shared by every package in this module.

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

// Package fixedmath roots the module and carries the error taxonomy every
// sub-package (limb, bcd, fixed, cfixed, xfloat, quant, fpcontext) reports
// through. Every error an operation can raise is one of the four sentinels
// below, wrapped with context via fmt.Errorf("...: %w", Err...).
package fixedmath

import "errors"

var (
	// ErrInvalidBits is raised when a bit specifier is malformed: bits < 1,
	// exp_bits out of [1, EXP_LIMIT], man_bits > MAN_LIMIT, or a cast whose
	// (bits, int_bits, frac_bits) are contradictory. fixed.InnerProduct also
	// reports operand slices of unequal or zero length with it.
	ErrInvalidBits = errors.New("fixedmath: invalid bit specifier")

	// ErrInvalidConversion is raised when a value conversion is fed input it
	// cannot represent: NaN/Inf into a fixed-point constructor, an
	// unparseable decimal string, a non-integer tuple element.
	ErrInvalidConversion = errors.New("fixedmath: invalid value conversion")

	// ErrDivisionByZero is raised by fixed-point a/0 and complex a/(0+0i).
	ErrDivisionByZero = errors.New("fixedmath: division by zero")

	// ErrUnsupportedMode is raised when a quantization or overflow mode is
	// not implemented on a given code path, distinct from the other three so
	// callers can detect partial support.
	ErrUnsupportedMode = errors.New("fixedmath: unsupported mode")
)
