// Package hashing provides position keys for repetition detection and
// transposition caches.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// Zobrist keys for pieces, castling, en passant and side to move.
var (
	zobristPiece     [2][chess.NumPieceValues][64]uint64
	zobristCastle    [16]uint64 // Indexed by the castling rights bit set
	zobristEnPassant [8]uint64  // Indexed by file
	zobristSide      uint64     // XORed in when Black is to move
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for p := chess.Pawn; p <= chess.King; p++ {
			for sq := range zobristPiece[c][p] {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Zobrist computes the position key of a board. Two boards that share
// placement, side to move, castling rights and an en passant target that
// can actually be captured get the same key; the move counters are ignored.
func Zobrist(board *engine.Board) uint64 {
	var key uint64

	for sq := chess.A1; sq <= chess.H8; sq++ {
		c := board.CellAt(sq)
		if c.IsPiece() {
			key ^= zobristPiece[c.Colour()][c.Piece()][sq]
		}
	}

	if board.SideToMove() == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[board.CastlingRights()]

	if ep, ok := board.EnPassantTarget(); ok && capturable(board, ep) {
		key ^= zobristEnPassant[ep.File()]
	}

	return key
}

// capturable reports whether a pawn of the side to move stands ready to take
// en passant onto ep.
func capturable(board *engine.Board, ep chess.Square) bool {
	us := board.SideToMove()
	pawn := chess.MakeCell(us, chess.Pawn)
	for _, df := range [2]int{-1, 1} {
		if from, ok := ep.Offset(df, -chess.ColourOffset(us)); ok && board.CellAt(from) == pawn {
			return true
		}
	}
	return false
}
