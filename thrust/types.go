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

// Package thrust provides parallel sequence algorithms over pluggable
// addressing schemes: contiguous buffers, computed sequences, and discard
// sinks.
//
// The centerpiece is the adjacent-difference transform: for a sequence of N
// elements, apply a binary operator to every consecutive pair while passing
// the last element through unchanged. The transform runs in-place or into a
// separate output, sequentially or tiled across a worker pool, and preserves
// exact operator-invocation semantics in every mode.
//
// Basic usage:
//
//	import (
//		"github.com/Jacobfaib/cccl/thrust"
//		"github.com/Jacobfaib/cccl/thrust/workerpool"
//	)
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	data := []float64{10, 7, 3, 9, 2}
//	seq := thrust.Slice[float64](data)
//	thrust.SubtractRight(pool, seq, seq.Len(), thrust.Minus)
//	// data = [3, 4, -6, 7, 2]
package thrust

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point element types.
type Floats interface {
	constraints.Float
}

// Integers is a constraint for integer element types.
type Integers interface {
	constraints.Integer
}

// Element is a constraint for all types a sequence may hold.
// Every Element type is convertible to every other, which is what allows
// an operator's result type to diverge from the destination element type.
type Element interface {
	Integers | Floats
}
