package engine

import "github.com/lgbarn/chesscore/internal/chess"

// generatePieceMoves appends the pseudo-legal moves of the knight, bishop,
// rook, queen or king on from. Castling is generated separately.
func generatePieceMoves(board *Board, from chess.Square, piece chess.Piece, moves []Move) []Move {
	switch piece {
	case chess.Knight:
		return generateStepMoves(board, from, knightOffsets[:], moves)
	case chess.King:
		return generateStepMoves(board, from, kingOffsets[:], moves)
	case chess.Bishop:
		return generateSlidingMoves(board, from, diagonalDirs[:], moves)
	case chess.Rook:
		return generateSlidingMoves(board, from, straightDirs[:], moves)
	case chess.Queen:
		moves = generateSlidingMoves(board, from, diagonalDirs[:], moves)
		return generateSlidingMoves(board, from, straightDirs[:], moves)
	}
	return moves
}

// generateStepMoves handles fixed-offset pieces: a destination is valid iff
// it is on the board and empty or held by the opponent.
func generateStepMoves(board *Board, from chess.Square, offsets [][2]int, moves []Move) []Move {
	us := board.sideToMove
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if ok && board.cells[to].Enterable(us) {
			moves = append(moves, Move{from: from, to: to, promotion: chess.Empty, kind: NormalMove})
		}
	}
	return moves
}

// generateSlidingMoves walks each ray until the edge or a blocker; an enemy
// blocker is included as a capture, a friendly one is not.
func generateSlidingMoves(board *Board, from chess.Square, dirs [][2]int, moves []Move) []Move {
	us := board.sideToMove
	for _, dir := range dirs {
		cur := from
		for {
			to, ok := cur.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			target := board.cells[to]
			if target.IsPiece() {
				if target.Colour() != us {
					moves = append(moves, Move{from: from, to: to, promotion: chess.Empty, kind: NormalMove})
				}
				break // Blocked
			}
			moves = append(moves, Move{from: from, to: to, promotion: chess.Empty, kind: NormalMove})
			cur = to
		}
	}
	return moves
}
