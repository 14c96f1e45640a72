package engine

import "github.com/lgbarn/chesscore/internal/chess"

// generatePawnMoves appends the pseudo-legal moves of the pawn on from:
// single and double pushes, diagonal captures, en passant, and one move per
// promotion piece when the pawn reaches the last rank.
func generatePawnMoves(board *Board, from chess.Square, moves []Move) []Move {
	us := board.sideToMove
	dir := chess.ColourOffset(us)

	// Forward move
	if one, ok := from.Offset(0, dir); ok && board.cells[one].IsEmpty() {
		moves = appendPawnMove(moves, from, one, NormalMove)

		// Double push from starting rank
		if from.Rank() == chess.PawnRank(us) {
			if two, ok := one.Offset(0, dir); ok && board.cells[two].IsEmpty() {
				moves = append(moves, Move{from: from, to: two, promotion: chess.Empty, kind: DoublePawnPush})
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.cells[to]
		if target.IsPiece() && target.Colour() != us {
			moves = appendPawnMove(moves, from, to, NormalMove)
			continue
		}
		// En passant: the double-pushed pawn stands beside the origin.
		if to == board.enPassant && target.IsEmpty() &&
			board.cells[chess.NewSquare(to.File(), from.Rank())].Is(us.Opposite(), chess.Pawn) {
			moves = append(moves, Move{from: from, to: to, promotion: chess.Empty, kind: EnPassantCapture})
		}
	}
	return moves
}

// appendPawnMove appends a pawn move, expanding it into the four promotion
// variants when it lands on the last rank.
func appendPawnMove(moves []Move, from, to chess.Square, kind MoveKind) []Move {
	if to.Rank() != 0 && to.Rank() != chess.BoardSize-1 {
		return append(moves, Move{from: from, to: to, promotion: chess.Empty, kind: kind})
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, Move{from: from, to: to, promotion: promo, kind: kind})
	}
	return moves
}
