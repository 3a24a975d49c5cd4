// Copyright 2025 cccl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thrust

import "github.com/Jacobfaib/cccl/thrust/workerpool"

// Parallel tuning parameters for the adjacent-difference transform.
const (
	// MinParallelPairs is the minimum pair count before tiling the transform
	// across a pool. Below it, per-launch overhead outweighs the memory-bound
	// pair computation and the sequential kernel wins.
	MinParallelPairs = 16384
)

// SubtractRight transforms seq in place: for every pair index i in
// [0, count-1), seq[i] becomes op(seq[i], seq[i+1]), where both operands are
// the values seq held before the call. The last element, seq[count-1], is
// the boundary element and is left untouched. count of 0 or 1 is a no-op
// with zero operator invocations.
//
// op is invoked exactly max(count-1, 0) times, in caller operand order, and
// always observes original input values regardless of how execution is
// scheduled. It must be safe for concurrent invocation; any state it shares
// across invocations (such as a test counter) must use atomic updates.
//
// pool may be nil, in which case the transform runs sequentially on the
// calling goroutine. With a pool, pair indices are split into contiguous
// tiles and the transform runs two-phase: every tile stages the operands it
// needs into private scratch, the pool's completion barrier separates the
// phases, and only then are results written. That ordering is what keeps one
// pair's write from corrupting a neighboring pair's read when input and
// output share storage.
func SubtractRight[T Element](pool *workerpool.Pool, seq ReadWriter[T], count int64, op func(T, T) T) {
	pairs := count - 1
	if pairs <= 0 {
		return
	}
	if pool == nil || pairs < MinParallelPairs {
		subtractRightSeq(seq, pairs, op)
		return
	}
	subtractRightTiled(pool, seq, pairs, op)
}

// SubtractRightCopy is the copy-mode transform: out[i] = op(in[i], in[i+1])
// for every pair index in [0, count-1), and out[count-1] receives the
// boundary element in[count-1] converted to the output element type. The
// input is never written.
//
// out may be a Discard sink; results are still computed (the invocation
// count is observable and equals max(count-1, 0)) and then dropped. When the
// operator's result type differs from the destination's element type, wrap
// the destination with Convert.
//
// Because input and output are disjoint, no staging is needed: with a pool,
// tiles of pair indices run concurrently with direct read/compute/write.
func SubtractRightCopy[T, R Element](pool *workerpool.Pool, in Reader[T], out Writer[R], count int64, op func(T, T) R) {
	if count <= 0 {
		return
	}
	// Boundary element: copied through verbatim, converted by assignment.
	// Its slot is no pair's write target, so ordering against the pair
	// writes below is irrelevant.
	out.Set(count-1, R(in.At(count-1)))

	pairs := count - 1
	if pairs == 0 {
		return
	}
	if pool == nil || pairs < MinParallelPairs {
		subtractRightCopyRange(in, out, 0, pairs, op)
		return
	}

	tileSize, tiles := tileRanges(pairs, int64(pool.NumWorkers()))
	pool.ParallelForAtomic(tiles, func(k int64) {
		first, last := tileSpan(k, tileSize, pairs)
		subtractRightCopyRange(in, out, first, last, op)
	})
}

// AdjacentDifference is SubtractRight with the Minus operator: each element
// becomes its difference with the element to its right.
func AdjacentDifference[T Element](pool *workerpool.Pool, seq ReadWriter[T], count int64) {
	SubtractRight(pool, seq, count, Minus[T])
}

// AdjacentDifferenceCopy is SubtractRightCopy with the Minus operator.
func AdjacentDifferenceCopy[T Element](pool *workerpool.Pool, in Reader[T], out Writer[T], count int64) {
	SubtractRightCopy(pool, in, out, count, Minus[T])
}

// subtractRightTiled runs the in-place transform two-phase across the pool.
//
// Tile k owns pair indices [k*tileSize, min((k+1)*tileSize, pairs)) and
// therefore reads the element window [first, last] inclusive: pair i needs
// elements i and i+1, so the window extends one past the tile's last pair.
// That trailing element is exactly the slot the next tile writes, which is
// the cross-tile hazard.
//
// Phase 1 gathers every tile's window into scratch private to the tile.
// The ParallelForAtomic return is a full barrier, so no element is written
// anywhere until every tile has finished reading. Phase 2 computes from
// scratch and writes the tile's own slots [first, last). Slot pairs (the
// boundary element) belongs to no tile and is never written.
func subtractRightTiled[T Element](pool *workerpool.Pool, seq ReadWriter[T], pairs int64, op func(T, T) T) {
	tileSize, tiles := tileRanges(pairs, int64(pool.NumWorkers()))
	scratch := make([][]T, tiles)

	pool.ParallelForAtomic(tiles, func(k int64) {
		first, last := tileSpan(k, tileSize, pairs)
		window := make([]T, last-first+1)
		for i := range window {
			window[i] = seq.At(first + int64(i))
		}
		scratch[k] = window
	})

	pool.ParallelForAtomic(tiles, func(k int64) {
		first, last := tileSpan(k, tileSize, pairs)
		window := scratch[k]
		for i := first; i < last; i++ {
			seq.Set(i, op(window[i-first], window[i-first+1]))
		}
	})
}

// tileRanges sizes contiguous tiles over a pair-index space: tileSize is the
// ceil division of pairs by workers, tiles the resulting tile count. Every
// pair index lands in exactly one tile.
func tileRanges(pairs, workers int64) (tileSize, tiles int64) {
	if workers < 1 {
		workers = 1
	}
	tileSize = (pairs + workers - 1) / workers
	tiles = (pairs + tileSize - 1) / tileSize
	return tileSize, tiles
}

// tileSpan returns tile k's half-open pair-index range.
func tileSpan(k, tileSize, pairs int64) (first, last int64) {
	first = k * tileSize
	last = min(first+tileSize, pairs)
	return first, last
}
