/*
   fixedmath quant package - quantization and overflow mode enums.

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

// Package quant implements the quantization (rounding) and overflow
// policies shared by the fixed-point and floating-point cast pipelines:
// the fifteen named rounding modes and three overflow modes, the guard/
// sticky bit extraction they round from, and the stochastic-rounding PRNG
// hookup.
package quant

// Mode selects how a value is rounded when discarding low bits.
type Mode int

const (
	// TRN floors to the new grid: plain arithmetic right shift, no
	// correction (two's complement asr already rounds toward -infinity).
	TRN Mode = iota
	// TRN_INF rounds toward +infinity: add 1 after the floor-shift if any
	// discarded bit was set.
	TRN_INF
	// TRN_ZERO truncates toward zero.
	TRN_ZERO
	// TRN_MAG truncates by magnitude: toward zero for positives, away from
	// zero for negatives.
	TRN_MAG
	// TRN_AWAY rounds away from zero unconditionally on any discarded bit.
	TRN_AWAY
	// RND rounds to nearest, ties to +infinity.
	RND
	// RND_ZERO rounds to nearest, ties to zero.
	RND_ZERO
	// RND_INF rounds to nearest, ties away from zero.
	RND_INF
	// RND_MIN_INF rounds to nearest, ties to -infinity.
	RND_MIN_INF
	// RND_CONV rounds to nearest, ties to even (banker's rounding).
	RND_CONV
	// RND_CONV_ODD rounds to nearest, ties to odd.
	RND_CONV_ODD
	// JAM floors then forces the result LSB to 1 unconditionally.
	JAM
	// JAM_UNBIASED floors then forces the result LSB to 1 iff any
	// discarded bit was set.
	JAM_UNBIASED
	// STOCH_WEIGHTED adds a uniform random value of the discarded width
	// before flooring, weighting the rounding probability by the
	// discarded magnitude.
	STOCH_WEIGHTED
	// STOCH_EQUAL adds a coin-flip between zero and all-ones of the
	// discarded width before flooring.
	STOCH_EQUAL
)

// String names a Mode the way it appears in the cast API and logs.
func (m Mode) String() string {
	switch m {
	case TRN:
		return "TRN"
	case TRN_INF:
		return "TRN_INF"
	case TRN_ZERO:
		return "TRN_ZERO"
	case TRN_MAG:
		return "TRN_MAG"
	case TRN_AWAY:
		return "TRN_AWAY"
	case RND:
		return "RND"
	case RND_ZERO:
		return "RND_ZERO"
	case RND_INF:
		return "RND_INF"
	case RND_MIN_INF:
		return "RND_MIN_INF"
	case RND_CONV:
		return "RND_CONV"
	case RND_CONV_ODD:
		return "RND_CONV_ODD"
	case JAM:
		return "JAM"
	case JAM_UNBIASED:
		return "JAM_UNBIASED"
	case STOCH_WEIGHTED:
		return "STOCH_WEIGHTED"
	case STOCH_EQUAL:
		return "STOCH_EQUAL"
	default:
		return "Mode(unknown)"
	}
}

// Overflow selects how an out-of-range value is handled once quantized.
type Overflow int

const (
	// Wrap sign-extends or truncates into the new width, discarding bits
	// above the sign.
	Wrap Overflow = iota
	// Sat clamps to the representable maximum or minimum.
	Sat
	// NumericStd forces every bit at or above the sign to the sign bit's
	// value; behaves like Wrap on in-range inputs but differs on
	// malformed ones.
	NumericStd
)

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "WRAP"
	case Sat:
		return "SAT"
	case NumericStd:
		return "NUMERIC_STD"
	default:
		return "Overflow(unknown)"
	}
}
