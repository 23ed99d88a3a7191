/*
   fixedmath bcd package - decimal string assembly.

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

package bcd

import (
	"fmt"
	"strings"

	"github.com/rcornwell/fixedmath"
)

// ErrMalformedDecimal is returned by Parse when the input does not match
// the grammar: optional leading '-', digits, optional single '.', digits.
// It wraps fixedmath.ErrInvalidConversion.
var ErrMalformedDecimal = fmt.Errorf("bcd: malformed decimal string: %w", fixedmath.ErrInvalidConversion)

// Format renders an unsigned digit vector (LSD first) as a decimal string
// with fracDigits of the vector placed after the point (fracDigits may be
// 0, in which case no point is emitted). A leading '-' is added when
// negative is true and the value is not all-zero digits.
func Format(digits Digits, fracDigits int, negative bool) string {
	trimmed := Trim(digits)
	var b strings.Builder

	allZero := true
	for _, d := range trimmed {
		if d != 0 {
			allZero = false
			break
		}
	}
	if negative && !allZero {
		b.WriteByte('-')
	}

	intDigits := len(trimmed) - fracDigits
	if intDigits <= 0 {
		b.WriteByte('0')
	} else {
		for i := intDigits - 1; i >= 0; i-- {
			b.WriteByte('0' + digitAt(trimmed, i+fracDigits))
		}
	}

	if fracDigits > 0 {
		b.WriteByte('.')
		for i := fracDigits - 1; i >= 0; i-- {
			b.WriteByte('0' + digitAt(trimmed, i))
		}
	}
	return b.String()
}

// digitAt returns digit i of digits (LSD-first), treating positions past
// the end of digits (higher than any stored digit, or fractional positions
// below index 0 that were never populated) as zero.
func digitAt(digits Digits, i int) uint8 {
	if i < 0 || i >= len(digits) {
		return 0
	}
	return digits[i]
}

// Parse decodes a decimal string into an unsigned LSD-first digit vector,
// the count of digits after the point (fracDigits), and a sign flag, per
// the grammar: optional leading '-', digits, optional single '.', digits,
// with an empty fractional part after '.' permitted. Returns
// ErrMalformedDecimal on anything else (a second '.', a non-digit, an empty
// string, or an integer part with zero digits).
func Parse(s string) (digits Digits, fracDigits int, negative bool, err error) {
	if s == "" {
		return nil, 0, false, fmt.Errorf("%w: empty string", ErrMalformedDecimal)
	}
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart := s
	fracPart := ""
	if dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, 0, false, fmt.Errorf("%w: multiple decimal points", ErrMalformedDecimal)
		}
	}
	if intPart == "" {
		return nil, 0, false, fmt.Errorf("%w: missing integer part", ErrMalformedDecimal)
	}
	for _, c := range intPart + fracPart {
		if c < '0' || c > '9' {
			return nil, 0, false, fmt.Errorf("%w: non-digit %q", ErrMalformedDecimal, c)
		}
	}

	fracDigits = len(fracPart)
	digits = make(Digits, len(intPart)+len(fracPart))
	// Combined digit string, most significant digit first; store LSD-first.
	combined := intPart + fracPart
	n := len(combined)
	for i := 0; i < n; i++ {
		digits[n-1-i] = combined[i] - '0'
	}
	if len(digits) == 0 {
		digits = Digits{0}
	}
	return digits, fracDigits, negative, nil
}
