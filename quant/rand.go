/*
   fixedmath quant package - stochastic rounding PRNG.

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

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Source is the process-wide stochastic-rounding generator, a ChaCha8
// stream seeded from a non-deterministic source at package initialization, per spec's
// "process-wide PRNG seeded at startup from a non-deterministic source,
// overridable through the float-quantization context".
type Source struct {
	mu  sync.Mutex
	rng *rand.ChaCha8
}

var defaultSource = newDefaultSource()

func newDefaultSource() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand is documented never to fail on any platform this
		// module targets; a zero seed is still a valid (if degenerate)
		// stream rather than a panic.
		seed = [32]byte{}
	}
	return &Source{rng: rand.NewChaCha8(seed)}
}

// DefaultSource returns the process-wide stochastic-rounding source.
func DefaultSource() *Source {
	return defaultSource
}

// NewSource builds a reproducible Source from an explicit 32-byte seed, for
// the float-quantization context override (spec section 3) and for tests.
func NewSource(seed [32]byte) *Source {
	return &Source{rng: rand.NewChaCha8(seed)}
}

// Uint64 returns the next 64 pseudo-random bits.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

// Bits returns a uniform pseudo-random value in [0, 2^n), n in [0, 64].
func (s *Source) Bits(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return s.Uint64()
	}
	return s.Uint64() & ((uint64(1) << n) - 1)
}

// Bool returns a single pseudo-random bit as a bool, used by STOCH_EQUAL's
// coin flip.
func (s *Source) Bool() bool {
	return s.Uint64()&1 != 0
}
