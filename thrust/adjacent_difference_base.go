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

// Sequential kernels for the adjacent-difference transform. These are the
// fallback for small counts and nil pools, and the per-tile body of the
// parallel copy path.
//
// Every kernel invokes op exactly once per pair index in [first, first+pairs),
// with operands read before the pair's own write. The in-place kernel keeps a
// one-element carry so each slot is read before the previous slot's result
// lands, which is what makes single-buffer execution safe at this level.

// subtractRightSeq computes seq[i] = op(seq[i], seq[i+1]) for every pair
// index in [0, pairs), ascending. Slot pairs (the boundary element) is never
// written.
func subtractRightSeq[T Element](seq ReadWriter[T], pairs int64, op func(T, T) T) {
	left := seq.At(0)
	for i := int64(0); i < pairs; i++ {
		right := seq.At(i + 1)
		seq.Set(i, op(left, right))
		left = right
	}
}

// subtractRightCopyRange computes out[i] = op(in[i], in[i+1]) for every pair
// index in [first, last). The input is only read, so ranges of the same
// transform may run concurrently.
func subtractRightCopyRange[T, R Element](in Reader[T], out Writer[R], first, last int64, op func(T, T) R) {
	left := in.At(first)
	for i := first; i < last; i++ {
		right := in.At(i + 1)
		out.Set(i, op(left, right))
		left = right
	}
}
