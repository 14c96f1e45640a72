package hashing

import (
	"sync"

	"github.com/lgbarn/chesscore/internal/engine"
)

// perftKey identifies a subtree: a position key and the remaining depth.
type perftKey struct {
	hash  uint64
	depth int
}

// PerftCache stores perft node counts by position and depth. It is safe for
// concurrent use by the goroutines of a parallel perft.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[perftKey]uint64
	maxCapacity int // 0 means unlimited
	hits        uint64
	misses      uint64
}

// NewPerftCache creates a cache holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PerftCache{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached node count for the board at depth.
func (c *PerftCache) Get(board *engine.Board, depth int) (uint64, bool) {
	key := perftKey{hash: Zobrist(board), depth: depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Put stores a node count. Once the cache is full new entries are dropped.
func (c *PerftCache) Put(board *engine.Board, depth int, nodes uint64) {
	key := perftKey{hash: Zobrist(board), depth: depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && c.isFull() {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *PerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the number of cache hits and misses so far.
func (c *PerftCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *PerftCache) isFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
