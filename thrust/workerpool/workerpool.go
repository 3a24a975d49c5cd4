// Copyright 2025 The cccl Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. Unlike per-call goroutine spawning, a Pool is created once and
// reused across many operations, eliminating allocation and spawn overhead.
//
// The pool partitions a 64-bit index space: sequence algorithms in this
// module routinely launch over counts that exceed 32-bit range, so all range
// arithmetic is carried out in int64.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, batch := range batches {
//	    pool.ParallelFor(n, func(start, end int64) {
//	        processRange(start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// Every ParallelFor variant blocks until all of its work items complete;
// that return is the pool's synchronization barrier. Work launched after a
// ParallelFor returns is guaranteed to observe all writes made during it.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for w := 0; w < numWorkers; w++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) using the worker pool. The index space
// is split into contiguous, non-overlapping, equally sized ranges, one per
// worker; every index is covered exactly once. No ordering holds between
// ranges. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int64, fn func(start, end int64)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items.
	workers := int64(p.numWorkers)
	if n < workers {
		workers = n
	}

	if workers == 1 {
		fn(0, n)
		return
	}

	// Ceil division so all items are covered.
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(int(workers))

	for i := int64(0); i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
//
// fn receives the index to process.
func (p *Pool) ParallelForAtomic(n int64, fn func(i int64)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := int64(0); i < n; i++ {
			fn(i)
		}
		return
	}

	workers := int64(p.numWorkers)
	if n < workers {
		workers = n
	}

	if workers == 1 {
		for i := int64(0); i < n; i++ {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(int(workers))

	for w := int64(0); w < workers; w++ {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := nextIdx.Add(1) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForBatched executes fn for batches of indices using atomic work
// stealing. Combines the load balancing of atomic distribution with reduced
// atomic operation overhead by processing batchSize items per grab.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelForBatched(n, batchSize int64, fn func(start, end int64)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := int64(p.numWorkers)
	if numBatches < workers {
		workers = numBatches
	}

	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(int(workers))

	for w := int64(0); w < workers; w++ {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := nextBatch.Add(1) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
