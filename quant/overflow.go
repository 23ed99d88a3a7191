/*
   fixedmath quant package - overflow handling.

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

package quant

import "github.com/rcornwell/fixedmath/limb"

// ApplyOverflow is the third step of the cast pipeline (spec.md section 4.5):
// given v, a two's complement limb vector already quantized to the target
// fractional precision and still allocated at its pre-cast width, it forces
// v to be a valid newBits-wide two's complement value, sign-extended across
// the rest of len(v)'s limbs.
func ApplyOverflow[W limb.Word](v []W, newBits int, mode Overflow) {
	switch mode {
	case Wrap, NumericStd:
		// Both re-derive the sign from bit newBits-1 and sign-extend above
		// it; they coincide on every input the pipeline can actually
		// produce (NumericStd's documented difference from Wrap is only
		// for malformed inputs outside this package's control -- see
		// DESIGN.md).
		SignExtend(v, newBits)
	case Sat:
		saturate(v, newBits)
	}
}

// SignExtend copies bit newBits-1 of v into every bit at or above
// newBits-1, leaving the lower newBits-1 bits untouched. This is step 1 of
// the cast pipeline (spec.md section 4.5) applied to an already-allocated,
// copied scratch vector, and is also the shared primitive behind the Wrap
// and NumericStd overflow modes below.
func SignExtend[W limb.Word](v []W, newBits int) {
	w := limb.Width[W]()
	total := len(v) * w
	sign := limb.Bit(v, newBits-1)
	for i := newBits - 1; i < total; i++ {
		limb.SetBit(v, i, sign)
	}
}

// saturate clamps v to the maximum or minimum value representable in
// newBits if it falls outside that range, otherwise it behaves like Wrap.
func saturate[W limb.Word](v []W, newBits int) {
	w := limb.Width[W]()
	total := len(v) * w
	bitWidth := total

	max := make([]W, len(v))
	for i := 0; i < newBits-1; i++ {
		limb.SetBit(max, i, 1)
	}
	min := make([]W, len(v))
	for i := range min {
		min[i] = ^max[i]
	}

	if lessThan(max, v, bitWidth) {
		copy(v, max)
		return
	}
	if lessThan(v, min, bitWidth) {
		copy(v, min)
		return
	}
	SignExtend(v, newBits)
}

// lessThan reports a < b for two equal-length two's complement vectors
// interpreted at bitWidth significant bits, via a - b's sign, mirroring the
// fixed-point package's comparison contract (spec.md section 4.4).
func lessThan[W limb.Word](a, b []W, bitWidth int) bool {
	scratch := make([]W, len(a))
	limb.SubSameLength(scratch, a, b)
	return limb.SignBit(scratch, bitWidth)
}
