/*
   fixedmath fixed package - cast pipeline.

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
	"github.com/rcornwell/fixedmath/fpcontext"
	"github.com/rcornwell/fixedmath/quant"
)

// Cast re-expresses v at a new (bits, intBits) layout, applying qmode to
// round away any fractional precision the new layout can't hold and vmode
// to force the result into newBits (spec.md section 4.5's four-step
// pipeline):
//
//  1. Allocate scratch at max(newBits, v.bits) significant bits, copy v's
//     limbs in and sign-extend.
//  2. Shift the binary point from v's fracBits to the new fracBits (a
//     logical shift; shifting left is exact, shifting right quantizes and
//     may round per qmode).
//  3. Apply vmode to force the result into newBits significant bits
//     (wrap/sign-extend or saturate).
//  4. Resize down to exactly the limbs newBits needs.
func (v Value) Cast(newBits, newIntBits int, qmode quant.Mode, vmode quant.Overflow) Value {
	newFracBits := newBits - newIntBits
	oldFracBits := v.FracBits()
	delta := newFracBits - oldFracBits

	scratchBits := newBits
	if v.bits > scratchBits {
		scratchBits = v.bits
	}
	if delta > 0 {
		scratchBits += delta // headroom so a growing fracBits can't lose top bits
	}
	n := limbCount(scratchBits) + 1
	scratch := v.signExtended(n)

	// Quantize interprets delta as "shift left by delta"; a growing
	// fracBits needs a left shift (delta > 0), a shrinking one needs a
	// right shift/round (delta < 0), matching step 2 above.
	quant.Quantize(scratch, delta, n*limbWidth, qmode, fpcontext.RandSource())

	quant.ApplyOverflow(scratch, newBits, vmode)

	limbs := make([]uint64, limbCount(newBits))
	copy(limbs, scratch)
	quant.SignExtend(limbs, newBits)

	return Value{bits: newBits, intBits: newIntBits, limbs: limbs}
}

// Resize is Cast to a new total width that holds fracBits steady and grows
// or shrinks intBits, the common "extend/truncate this integer" case.
func (v Value) Resize(newBits int, qmode quant.Mode, vmode quant.Overflow) Value {
	fracBits := v.FracBits()
	return v.Cast(newBits, newBits-fracBits, qmode, vmode)
}
