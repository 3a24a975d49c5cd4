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

// Sequence addressing. Algorithms in this package never touch storage
// directly; they read and write through these interfaces, which lets one
// call site operate on contiguous buffers, computed sequences, and discard
// sinks alike. All indices are int64 so that counts beyond 32-bit range
// (computed sequences routinely exceed it) never truncate.
//
// Bounds are a programming contract: algorithms only issue indices in
// [0, Len()), and implementations are not required to range-check.

// Reader is the read side of a sequence.
type Reader[T Element] interface {
	// At returns the element at index i.
	At(i int64) T
	// Len returns the number of elements.
	Len() int64
}

// Writer is the write side of a sequence.
type Writer[T Element] interface {
	// Set stores v at index i.
	Set(i int64, v T)
	// Len returns the number of elements.
	Len() int64
}

// ReadWriter is a sequence that supports both sides, as required by
// in-place transforms.
type ReadWriter[T Element] interface {
	Reader[T]
	Writer[T]
}

// Slice adapts a contiguous buffer to the sequence interfaces.
// The conversion is free: a Slice shares storage with the original slice.
type Slice[T Element] []T

// At returns the element at index i.
func (s Slice[T]) At(i int64) T { return s[i] }

// Set stores v at index i.
func (s Slice[T]) Set(i int64, v T) { s[i] = v }

// Len returns the number of elements.
func (s Slice[T]) Len() int64 { return int64(len(s)) }

// Counting is a read-only computed sequence whose element at index i is
// first + T(i). Nothing is stored, so its length may far exceed what would
// fit in memory; it is the standard input for large-scale verification runs.
type Counting[T Element] struct {
	first T
	n     int64
}

// NewCounting returns a counting sequence of n elements starting at first.
func NewCounting[T Element](first T, n int64) Counting[T] {
	return Counting[T]{first: first, n: n}
}

// At returns first + T(i).
func (c Counting[T]) At(i int64) T { return c.first + T(i) }

// Len returns the number of elements.
func (c Counting[T]) Len() int64 { return c.n }

// Discard is a write-only sink of n elements that accepts and drops every
// value. Writing to it is valid at any index in [0, n); nothing is retained.
// It serves callers that need a transform's side effects (such as operator
// invocations) without its output.
type Discard[T Element] struct {
	n int64
}

// NewDiscard returns a discard sink of n elements.
func NewDiscard[T Element](n int64) Discard[T] {
	return Discard[T]{n: n}
}

// Set drops v.
func (Discard[T]) Set(int64, T) {}

// Len returns the number of elements the sink accepts.
func (d Discard[T]) Len() int64 { return d.n }

// Converting adapts a Writer with element type U into a Writer with element
// type R by converting each stored value. It is how an operator whose result
// type differs from the destination's element type reaches that destination:
// the conversion follows Go's numeric conversion rules for U(v).
type Converting[R, U Element] struct {
	dst Writer[U]
}

// Convert wraps dst so that values of type R can be written to it.
// Both type parameters must be named at the call site:
//
//	out := thrust.Convert[int64, float32](dstSlice)
func Convert[R, U Element](dst Writer[U]) Converting[R, U] {
	return Converting[R, U]{dst: dst}
}

// Set converts v to the destination element type and stores it.
func (c Converting[R, U]) Set(i int64, v R) { c.dst.Set(i, U(v)) }

// Len returns the destination's length.
func (c Converting[R, U]) Len() int64 { return c.dst.Len() }
