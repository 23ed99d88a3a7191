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

// Package fpcontext holds the four process-wide arithmetic settings spec.md
// section 3 describes: the float quantization mode, the fixed-point cast
// mode (quantization + overflow), and the two optional accumulator-type
// overrides. Each setting is a mutex-guarded stack so a caller can scope an
// override to a block of code and have it restored automatically on exit,
// the same save-then-restore discipline the teacher's cpuState uses around
// cpu.progMask when an interrupt is delivered and later returned from.
package fpcontext

import (
	"sync"

	"github.com/rcornwell/fixedmath/quant"
)

// FixedCastMode pairs the two independent settings fixed-point casts read
// when neither is passed explicitly.
type FixedCastMode struct {
	Quant    quant.Mode
	Overflow quant.Overflow
}

// AccumulatorSpec names a bit layout an inner-product/reduction call should
// accumulate in, overriding the operand layout. IntBits/FracBits apply to a
// fixed-point accumulator; ExpBits/ManBits/Bias apply to a float one. Which
// fields are meaningful depends on which override slot the value lives in.
type AccumulatorSpec struct {
	IntBits  int
	FracBits int
	ExpBits  int
	ManBits  int
	Bias     int
}

var (
	floatModeStack = newStack(quant.RND_CONV)
	fixedModeStack = newStack(FixedCastMode{Quant: quant.TRN, Overflow: quant.Wrap})
	fixedAccStack  = newStack[*AccumulatorSpec](nil)
	floatAccStack  = newStack[*AccumulatorSpec](nil)

	randSource = quant.DefaultSource()
	randMu     sync.RWMutex
)

// stack is a mutex-guarded, generically-typed override stack: push on
// enter, pop on exit, current() reads the top (or the zero-depth default).
type stack[T any] struct {
	mu      sync.RWMutex
	values  []T
	initial T
}

func newStack[T any](initial T) *stack[T] {
	return &stack[T]{initial: initial}
}

func (s *stack[T]) current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.values) == 0 {
		return s.initial
	}
	return s.values[len(s.values)-1]
}

func (s *stack[T]) push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, v)
}

func (s *stack[T]) pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return
	}
	s.values = s.values[:len(s.values)-1]
}

// FloatQuantMode returns the process-wide float quantization mode currently
// in effect.
func FloatQuantMode() quant.Mode {
	return floatModeStack.current()
}

// WithFloatQuantMode runs fn with the float quantization mode overridden to
// mode, restoring the previous setting (however deep the nesting) when fn
// returns, including via panic.
func WithFloatQuantMode(mode quant.Mode, fn func()) {
	floatModeStack.push(mode)
	defer floatModeStack.pop()
	fn()
}

// FixedCast returns the process-wide fixed-point cast mode currently in
// effect.
func FixedCast() FixedCastMode {
	return fixedModeStack.current()
}

// WithFixedCast scopes mode to fn's duration.
func WithFixedCast(mode FixedCastMode, fn func()) {
	fixedModeStack.push(mode)
	defer fixedModeStack.pop()
	fn()
}

// FixedAccumulator returns the fixed-point accumulator override currently in
// effect, or nil if reductions should accumulate in their operand layout.
func FixedAccumulator() *AccumulatorSpec {
	return fixedAccStack.current()
}

// WithFixedAccumulator scopes spec to fn's duration.
func WithFixedAccumulator(spec *AccumulatorSpec, fn func()) {
	fixedAccStack.push(spec)
	defer fixedAccStack.pop()
	fn()
}

// FloatAccumulator returns the float accumulator override currently in
// effect, or nil.
func FloatAccumulator() *AccumulatorSpec {
	return floatAccStack.current()
}

// WithFloatAccumulator scopes spec to fn's duration.
func WithFloatAccumulator(spec *AccumulatorSpec, fn func()) {
	floatAccStack.push(spec)
	defer floatAccStack.pop()
	fn()
}

// RandSource returns the process-wide stochastic-rounding PRNG source.
func RandSource() *quant.Source {
	randMu.RLock()
	defer randMu.RUnlock()
	return randSource
}

// SeedRandSource replaces the process-wide PRNG with one seeded
// deterministically, for reproducible stochastic-rounding tests and
// simulations. Unlike the mode/accumulator slots this is not scoped: the
// spec calls out the PRNG as part of the float quantization context, but a
// stream reseed is inherently process-wide and non-nestable.
func SeedRandSource(seed [32]byte) {
	randMu.Lock()
	defer randMu.Unlock()
	randSource = quant.NewSource(seed)
}
