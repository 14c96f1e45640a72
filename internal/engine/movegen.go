package engine

import "github.com/lgbarn/chesscore/internal/chess"

// GenOptions tunes move generation without changing its result.
type GenOptions struct {
	// DoubleCheckFastPath restricts generation to king moves once two
	// pieces give check, since no other move can answer a double check.
	DoubleCheckFastPath bool
}

// PseudoLegalMoves returns every geometrically possible move for the side to
// move, ignoring whether the mover's king is left in check. Castling is only
// emitted when all its conditions hold. The order is deterministic: origin
// squares a1..h8, then per-piece direction order, castling after the king's
// ordinary moves.
func PseudoLegalMoves(board *Board) []Move {
	return generate(board, make([]Move, 0, 48), false)
}

// LegalMoves returns the moves that do not leave the mover's king attacked.
func LegalMoves(board *Board) []Move {
	return LegalMovesWith(board, GenOptions{})
}

// LegalMovesWith is LegalMoves with generation options.
func LegalMovesWith(board *Board, opts GenOptions) []Move {
	kingOnly := opts.DoubleCheckFastPath && CheckCount(board) >= 2
	pseudo := generate(board, make([]Move, 0, 48), kingOnly)

	scratch := *board
	us := board.sideToMove
	legal := pseudo[:0]
	for _, m := range pseudo {
		u := makeMove(&scratch, m)
		if !InCheck(&scratch, us) {
			legal = append(legal, m)
		}
		unmakeMove(&scratch, u)
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *Board) bool {
	scratch := *board
	us := board.sideToMove
	for _, m := range generate(board, make([]Move, 0, 48), false) {
		u := makeMove(&scratch, m)
		safe := !InCheck(&scratch, us)
		unmakeMove(&scratch, u)
		if safe {
			return true
		}
	}
	return false
}

// Captures returns the legal moves that take a piece, en passant included.
func Captures(board *Board) []Move {
	moves := LegalMoves(board)
	captures := moves[:0]
	for _, m := range moves {
		if IsCapture(board, m) {
			captures = append(captures, m)
		}
	}
	return captures
}

// generate appends pseudo-legal moves for the side to move. With kingOnly
// set, only the king's non-castling moves are produced.
func generate(board *Board, moves []Move, kingOnly bool) []Move {
	us := board.sideToMove
	if kingOnly {
		return generatePieceMoves(board, board.kings[us], chess.King, moves)
	}
	for sq := chess.A1; sq <= chess.H8; sq++ {
		c := board.cells[sq]
		if !c.IsPiece() || c.Colour() != us {
			continue
		}
		switch piece := c.Piece(); piece {
		case chess.Pawn:
			moves = generatePawnMoves(board, sq, moves)
		case chess.King:
			moves = generatePieceMoves(board, sq, piece, moves)
			moves = generateCastles(board, moves)
		default:
			moves = generatePieceMoves(board, sq, piece, moves)
		}
	}
	return moves
}
