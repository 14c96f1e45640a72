// Package worker provides a worker pool for splitting perft across goroutines.
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore/internal/engine"
)

// WorkItem is one root move to count below. Board is owned by the item:
// workers may mutate it freely.
type WorkItem struct {
	Board *engine.Board // Position before Move
	Move  engine.Move
	Depth int // Remaining depth after Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the count for one work item.
type ProcessResult struct {
	Move  engine.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc counts the subtree described by a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	items       chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result queues. Values
// below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool around processFunc. By default it runs
// one worker per CPU with a queue slot per worker.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{processFunc: processFunc, numWorkers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize < 1 {
		p.bufferSize = p.numWorkers
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// work counts items until the item queue is closed. Once the pool is
// stopped, remaining items are drained without being counted.
func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.items {
		if p.IsStopped() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// SubmitContext queues an item, giving up when ctx is done.
func (p *Pool) SubmitContext(ctx context.Context, item WorkItem) error {
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel the counts arrive on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
