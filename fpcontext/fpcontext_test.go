/*
   fixedmath fpcontext package - process-wide arithmetic configuration.

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

package fpcontext

import (
	"testing"

	"github.com/rcornwell/fixedmath/quant"
)

func TestFloatQuantModeDefaultAndScoping(t *testing.T) {
	if got := FloatQuantMode(); got != quant.RND_CONV {
		t.Fatalf("default FloatQuantMode() = %v, want RND_CONV", got)
	}
	WithFloatQuantMode(quant.TRN, func() {
		if got := FloatQuantMode(); got != quant.TRN {
			t.Fatalf("inside override, FloatQuantMode() = %v, want TRN", got)
		}
		WithFloatQuantMode(quant.JAM, func() {
			if got := FloatQuantMode(); got != quant.JAM {
				t.Fatalf("inside nested override, FloatQuantMode() = %v, want JAM", got)
			}
		})
		if got := FloatQuantMode(); got != quant.TRN {
			t.Fatalf("after nested override exits, FloatQuantMode() = %v, want TRN", got)
		}
	})
	if got := FloatQuantMode(); got != quant.RND_CONV {
		t.Fatalf("after override exits, FloatQuantMode() = %v, want RND_CONV", got)
	}
}

func TestFixedCastScopingRestoresOnPanic(t *testing.T) {
	defer func() {
		recover()
		if got := FixedCast(); got.Quant != quant.TRN || got.Overflow != quant.Wrap {
			t.Fatalf("after panic, FixedCast() = %+v, want default", got)
		}
	}()
	WithFixedCast(FixedCastMode{Quant: quant.RND, Overflow: quant.Sat}, func() {
		panic("boom")
	})
}

func TestAccumulatorOverridesDefaultNil(t *testing.T) {
	if FixedAccumulator() != nil {
		t.Fatalf("default FixedAccumulator() should be nil")
	}
	spec := &AccumulatorSpec{IntBits: 8, FracBits: 24}
	WithFixedAccumulator(spec, func() {
		if got := FixedAccumulator(); got != spec {
			t.Fatalf("FixedAccumulator() = %v, want %v", got, spec)
		}
	})
	if FixedAccumulator() != nil {
		t.Fatalf("FixedAccumulator() after scope exit should be nil")
	}
}
