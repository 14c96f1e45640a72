package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/engine"
)

// Common positions used across tests.
const (
	// Kiwipete exercises castling, en passant, promotions and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	// EndgameFEN is perft position 3, rich in rook checks and en passant pins.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	// PromotionFEN is perft position 4, with promotions and castling under fire.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)

// MustBoard parses a FEN and returns the board.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t testing.TB, fen string) *engine.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board
}

// MustMove resolves a coordinate-notation move on the board.
// It calls t.Fatal if the move is not legal.
func MustMove(t testing.TB, board *engine.Board, text string) engine.Move {
	t.Helper()
	m, err := engine.ParseMove(board, text)
	if err != nil {
		t.Fatalf("failed to resolve move %q: %v", text, err)
	}
	return m
}

// MustPlay applies a sequence of coordinate-notation moves to a copy of the
// board and returns the resulting board.
// It calls t.Fatal if any move is not legal.
func MustPlay(t testing.TB, board *engine.Board, moves ...string) *engine.Board {
	t.Helper()
	cur := board
	for _, text := range moves {
		next, _, err := engine.Apply(cur, MustMove(t, cur, text))
		if err != nil {
			t.Fatalf("failed to apply move %q: %v", text, err)
		}
		cur = next
	}
	return cur
}

// MoveStrings returns the coordinate text of each move.
func MoveStrings(moves []engine.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
