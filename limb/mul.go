/*
   fixedmath limb kernel - multiply primitives.

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

package limb

import "golang.org/x/sync/errgroup"

// parallelMulThreshold is the operand length (in limbs) above which
// UnsignedMul splits the outer loop across goroutines. Below it the
// goroutine/errgroup setup cost dominates the saving.
const parallelMulThreshold = 64

// MulByLimb computes dst = a * b (single-limb multiplier) over len(a) limbs,
// returning the final carry limb. dst and a may alias.
func MulByLimb[W Word](dst, a []W, b W) W {
	var carry W
	for i := range a {
		hi, lo := mulWide(a[i], b)
		sum := lo + carry
		if sum < lo {
			hi++
		}
		dst[i] = sum
		carry = hi
	}
	return carry
}

// AddmulByLimb computes dst += a * b (single-limb multiplier) over len(a)
// limbs, accumulating into the existing contents of dst, and returns the
// final carry limb. This is the inner step of schoolbook multiply: one pass
// per limb of the multiplier, grounded on mini-gmp's mpn_addmul_1.
func AddmulByLimb[W Word](dst, a []W, b W) W {
	var carry W
	for i := range a {
		hi, lo := mulWide(a[i], b)
		sum := lo + carry
		if sum < lo {
			hi++
		}
		sum2 := dst[i] + sum
		if sum2 < dst[i] {
			hi++
		}
		dst[i] = sum2
		carry = hi
	}
	return carry
}

// SubmulByLimb computes dst -= a * b (single-limb multiplier) over len(a)
// limbs, and returns the final borrow limb (as the two's complement of the
// would-be negative carry, mirroring mini-gmp's mpn_submul_1).
func SubmulByLimb[W Word](dst, a []W, b W) W {
	var borrow W
	for i := range a {
		hi, lo := mulWide(a[i], b)
		sum := lo + borrow
		if sum < lo {
			hi++
		}
		d := dst[i] - sum
		if d > dst[i] {
			hi++
		}
		dst[i] = d
		borrow = hi
	}
	return borrow
}

// UnsignedMul computes the full (na+nb)-limb unsigned product of a (na
// limbs) and b (nb limbs) into dst (which must have len >= na+nb and is
// zeroed by the caller beforehand or by this call). Schoolbook addmul,
// grounded on mini-gmp's mpn_mul: for each limb of b, accumulate a*b[j]
// shifted into position j.
//
// When na is large, the outer loop over b's limbs is embarrassingly
// parallel except for write conflicts at overlapping dst positions; rather
// than risk a racy dst, the parallel path partitions b into
// non-overlapping column bands and sums each band's partial product
// independently before combining, via golang.org/x/sync/errgroup.
func UnsignedMul[W Word](dst, a, b []W) {
	na, nb := len(a), len(b)
	for i := 0; i < na+nb; i++ {
		dst[i] = 0
	}
	if na < parallelMulThreshold || nb < 2 {
		unsignedMulSequential(dst, a, b)
		return
	}
	unsignedMulParallel(dst, a, b)
}

func unsignedMulSequential[W Word](dst, a, b []W) {
	na := len(a)
	for j, bj := range b {
		carry := AddmulByLimb(dst[j:j+na], a, bj)
		InplaceAddSingle(dst[j+na:], carry)
	}
}

// unsignedMulParallel partitions b's limbs into worker-sized bands. Each
// worker computes the full-length partial product of a against its band
// into a private scratch buffer (so no two goroutines ever write the same
// dst element), and the partials are summed into dst sequentially once all
// workers finish.
func unsignedMulParallel[W Word](dst, a, b []W) {
	na, nb := len(a), len(b)
	workers := nb / parallelMulThreshold
	if workers < 1 {
		workers = 1
	}
	if workers > 8 {
		workers = 8
	}
	bandSize := (nb + workers - 1) / workers
	partials := make([][]W, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * bandSize
		if start >= nb {
			continue
		}
		end := start + bandSize
		if end > nb {
			end = nb
		}
		g.Go(func() error {
			partial := make([]W, na+nb)
			for j := start; j < end; j++ {
				bj := b[j]
				if bj == 0 {
					continue
				}
				carry := AddmulByLimb(partial[j:j+na], a, bj)
				InplaceAddSingle(partial[j+na:], carry)
			}
			partials[w] = partial
			return nil
		})
	}
	_ = g.Wait() // workers never return a non-nil error

	// The true product of an na-limb and nb-limb magnitude fits exactly in
	// na+nb limbs, so summing the partials never carries out of dst's top
	// limb.
	for _, partial := range partials {
		if partial == nil {
			continue
		}
		InplaceAddSameLength(dst, partial)
	}
}
