package hashing

import "github.com/lgbarn/chesscore/internal/engine"

// History records the keys of the positions reached in a game so that
// repetitions can be counted. It implements engine.RepetitionCounter.
type History struct {
	// counts maps a position key to its number of occurrences
	counts map[uint64]int
	// keys holds the pushed keys in order, for Pop
	keys []uint64
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{counts: make(map[uint64]int)}
}

// Push records a position and returns how often it has now occurred.
func (h *History) Push(board *engine.Board) int {
	key := Zobrist(board)
	h.keys = append(h.keys, key)
	h.counts[key]++
	return h.counts[key]
}

// Pop forgets the most recently pushed position. It returns false if the
// history is empty.
func (h *History) Pop() bool {
	if len(h.keys) == 0 {
		return false
	}
	key := h.keys[len(h.keys)-1]
	h.keys = h.keys[:len(h.keys)-1]
	if h.counts[key]--; h.counts[key] == 0 {
		delete(h.counts, key)
	}
	return true
}

// Repetitions returns how many times the board's position has been pushed.
func (h *History) Repetitions(board *engine.Board) int {
	return h.counts[Zobrist(board)]
}

// Len returns the number of positions pushed.
func (h *History) Len() int {
	return len(h.keys)
}

// UniqueCount returns the number of distinct positions pushed.
func (h *History) UniqueCount() int {
	return len(h.counts)
}

// Reset clears the history.
func (h *History) Reset() {
	h.counts = make(map[uint64]int)
	h.keys = h.keys[:0]
}
