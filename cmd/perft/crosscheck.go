package main

import (
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chesscore/internal/engine"
)

// mismatch is a root move whose count differs between the two generators.
// A zero Ours or Theirs means that generator did not produce the move.
type mismatch struct {
	Move   string
	Ours   uint64
	Theirs uint64
}

// referencePerft counts leaf nodes with dragontoothmg.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// referenceDivide counts the nodes below each root move with dragontoothmg.
func referenceDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		counts[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return counts
}

// crossCheckDivide compares a divide against dragontoothmg's and returns
// the root moves on which they disagree, in our move order followed by
// moves only the reference produced.
func crossCheckDivide(fen string, depth int, entries []engine.DivideEntry) []mismatch {
	theirs := referenceDivide(fen, depth)
	var diffs []mismatch
	for _, e := range entries {
		text := e.Move.String()
		n, ok := theirs[text]
		if !ok || n != e.Nodes {
			diffs = append(diffs, mismatch{Move: text, Ours: e.Nodes, Theirs: n})
		}
		delete(theirs, text)
	}
	rest := make([]string, 0, len(theirs))
	for text := range theirs {
		rest = append(rest, text)
	}
	sort.Strings(rest)
	for _, text := range rest {
		diffs = append(diffs, mismatch{Move: text, Theirs: theirs[text]})
	}
	return diffs
}
