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

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Jacobfaib/cccl/thrust/workerpool"
)

// Asynchronous launches. The transform itself is atomic: once started it
// runs to completion, and the caller observes completion through the
// returned Execution handle rather than by blocking on the call.

// Execution is the completion handle for an asynchronously launched
// transform.
type Execution struct {
	done <-chan struct{}
	err  func() error
}

// Done returns a channel that is closed when the transform has completed.
func (e Execution) Done() <-chan struct{} { return e.done }

// Wait blocks until the transform completes and returns its error, if any.
// The only error source is a context already cancelled at launch; a
// transform that started always finishes with a nil error.
func (e Execution) Wait() error {
	<-e.done
	return e.err()
}

// executionFromGroup starts a goroutine waiting on the group and captures
// its result into an Execution handle.
func executionFromGroup(g *errgroup.Group) Execution {
	done := make(chan struct{})
	var execErr error
	go func() {
		execErr = g.Wait()
		close(done)
	}()
	return Execution{
		done: done,
		err:  func() error { return execErr },
	}
}

// launch runs fn in an errgroup, refusing to start if ctx is already
// cancelled. There is no mid-transform cancellation: ctx is consulted once,
// before any element is touched.
func launch(ctx context.Context, fn func()) Execution {
	var g errgroup.Group
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn()
		return nil
	})
	return executionFromGroup(&g)
}

// SubtractRightAsync launches SubtractRight without blocking the caller.
// If ctx is cancelled before the transform starts, seq is left untouched and
// Wait returns the context error; once started, the transform always runs to
// completion.
func SubtractRightAsync[T Element](ctx context.Context, pool *workerpool.Pool, seq ReadWriter[T], count int64, op func(T, T) T) Execution {
	return launch(ctx, func() {
		SubtractRight(pool, seq, count, op)
	})
}

// SubtractRightCopyAsync launches SubtractRightCopy without blocking the
// caller. Cancellation semantics match SubtractRightAsync.
func SubtractRightCopyAsync[T, R Element](ctx context.Context, pool *workerpool.Pool, in Reader[T], out Writer[R], count int64, op func(T, T) R) Execution {
	return launch(ctx, func() {
		SubtractRightCopy(pool, in, out, count, op)
	})
}
