package engine

import "github.com/lgbarn/chesscore/internal/chess"

// castleSide describes one wing's castling geometry as file indices on the
// mover's home rank. The king always starts on the e-file.
type castleSide struct {
	kind     MoveKind
	rookFile int
	rookTo   int
	kingTo   int
	between  []int // must be empty
	passes   []int // king's path, destination included; must not be attacked
}

const kingFile = 4

var (
	kingSide = castleSide{
		kind: CastleKingSide, rookFile: 7, rookTo: 5, kingTo: 6,
		between: []int{5, 6}, passes: []int{5, 6},
	}
	queenSide = castleSide{
		kind: CastleQueenSide, rookFile: 0, rookTo: 3, kingTo: 2,
		between: []int{1, 2, 3}, passes: []int{3, 2},
	}
)

// right returns the castling flag guarding this wing for a colour.
func (s castleSide) right(colour chess.Colour) chess.CastlingRights {
	if s.kind == CastleKingSide {
		return chess.KingSide(colour)
	}
	return chess.QueenSide(colour)
}

// castleSideFor matches a king move against the two wings and reports the
// wing when castling that way is currently permitted.
func castleSideFor(board *Board, from, to chess.Square) (castleSide, bool) {
	us := board.sideToMove
	home := chess.HomeRank(us)
	if from != chess.NewSquare(kingFile, home) || to.Rank() != home {
		return castleSide{}, false
	}
	for _, side := range []castleSide{kingSide, queenSide} {
		if to.File() == side.kingTo && canCastle(board, side) {
			return side, true
		}
	}
	return castleSide{}, false
}

// canCastle checks the right, the empty squares between king and rook, and
// that the king neither starts on, passes through, nor lands on an attacked
// square.
func canCastle(board *Board, side castleSide) bool {
	us := board.sideToMove
	if !board.castling.Has(side.right(us)) {
		return false
	}
	home := chess.HomeRank(us)
	king := chess.NewSquare(kingFile, home)
	if !board.cells[king].Is(us, chess.King) || !board.cells[chess.NewSquare(side.rookFile, home)].Is(us, chess.Rook) {
		return false
	}
	for _, f := range side.between {
		if !board.cells[chess.NewSquare(f, home)].IsEmpty() {
			return false
		}
	}
	them := us.Opposite()
	if IsAttacked(board, king, them) {
		return false
	}
	for _, f := range side.passes {
		if IsAttacked(board, chess.NewSquare(f, home), them) {
			return false
		}
	}
	return true
}

// generateCastles appends the castling moves available to the side to move.
func generateCastles(board *Board, moves []Move) []Move {
	us := board.sideToMove
	home := chess.HomeRank(us)
	from := chess.NewSquare(kingFile, home)
	for _, side := range []castleSide{kingSide, queenSide} {
		if canCastle(board, side) {
			moves = append(moves, Move{from: from, to: chess.NewSquare(side.kingTo, home), promotion: chess.Empty, kind: side.kind})
		}
	}
	return moves
}

// castleRookSquares returns the rook's origin and destination for a castling
// move by colour.
func castleRookSquares(kind MoveKind, colour chess.Colour) (chess.Square, chess.Square) {
	side := kingSide
	if kind == CastleQueenSide {
		side = queenSide
	}
	home := chess.HomeRank(colour)
	return chess.NewSquare(side.rookFile, home), chess.NewSquare(side.rookTo, home)
}

// rightsTouchedBy returns the castling flags lost when a move leaves or
// lands on sq: the king's home square revokes both, a rook corner its wing.
func rightsTouchedBy(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.E1:
		return chess.BothSides(chess.White)
	case chess.H1:
		return chess.WhiteKingSide
	case chess.A1:
		return chess.WhiteQueenSide
	case chess.E8:
		return chess.BothSides(chess.Black)
	case chess.H8:
		return chess.BlackKingSide
	case chess.A8:
		return chess.BlackQueenSide
	}
	return chess.NoCastling
}
