package engine

import "sort"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth zero counts the position itself.
func Perft(board *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	scratch := *board
	return perft(&scratch, depth)
}

func perft(b *Board, depth int) uint64 {
	moves := LegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := makeMove(b, m)
		nodes += perft(b, depth-1)
		unmakeMove(b, u)
	}
	return nodes
}

// NodeCache stores subtree node counts by position and depth.
type NodeCache interface {
	Get(board *Board, depth int) (uint64, bool)
	Put(board *Board, depth int, nodes uint64)
}

// PerftCached is Perft with subtree counts of depth two or more looked up
// in and stored to cache. A nil cache behaves like Perft.
func PerftCached(board *Board, depth int, cache NodeCache) uint64 {
	if cache == nil {
		return Perft(board, depth)
	}
	if depth <= 0 {
		return 1
	}
	scratch := *board
	return perftCached(&scratch, depth, cache)
}

func perftCached(b *Board, depth int, cache NodeCache) uint64 {
	if depth == 1 {
		return uint64(len(LegalMoves(b)))
	}
	if nodes, ok := cache.Get(b, depth); ok {
		return nodes
	}
	var nodes uint64
	for _, m := range LegalMoves(b) {
		u := makeMove(b, m)
		nodes += perftCached(b, depth-1, cache)
		unmakeMove(b, u)
	}
	cache.Put(b, depth, nodes)
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, sorted by move
// text. Depth must be at least one.
func Divide(board *Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	scratch := *board
	moves := LegalMoves(&scratch)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := makeMove(&scratch, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(&scratch, depth-1)})
		unmakeMove(&scratch, u)
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders divide entries by move text.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}

// TotalNodes sums the node counts of divide entries.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
