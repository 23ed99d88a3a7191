/*
   fixedmath fixed package - decimal string tests.

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
	"testing"

	"github.com/rcornwell/fixedmath/quant"
)

func TestStringExactFraction(t *testing.T) {
	v, err := FromFloat64(4, 4, 3.75)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got, want := v.String(), "3.7500"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringNegative(t *testing.T) {
	v, err := FromFloat64(4, 4, -1.5)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got, want := v.String(), "-1.5000"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringNoFracBits(t *testing.T) {
	v := mustFromInt64(t, 8, 0, 42)
	if got, want := v.String(), "42"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringZeroIsUnsigned(t *testing.T) {
	v, _ := New(4, 4)
	if got, want := v.String(), "0.0000"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	v, err := FromString(8, 8, "3.75", quant.TRN, quant.Wrap)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if got := v.ToFloat64(); got != 3.75 {
		t.Fatalf("FromString(3.75).ToFloat64() = %v, want 3.75", got)
	}
}

func TestFromStringNegative(t *testing.T) {
	v, err := FromString(8, 8, "-12.5", quant.TRN, quant.Wrap)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if got := v.ToFloat64(); got != -12.5 {
		t.Fatalf("FromString(-12.5).ToFloat64() = %v, want -12.5", got)
	}
}

func TestFromStringMalformedErrors(t *testing.T) {
	if _, err := FromString(8, 8, "not-a-number", quant.TRN, quant.Wrap); err == nil {
		t.Fatalf("FromString(malformed): want error, got nil")
	}
}

func TestFromStringIntegerOnly(t *testing.T) {
	v, err := FromString(8, 8, "7", quant.TRN, quant.Wrap)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if got := v.ToFloat64(); got != 7 {
		t.Fatalf("FromString(7).ToFloat64() = %v, want 7", got)
	}
}
