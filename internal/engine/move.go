package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// MoveKind categorizes moves by their side effects.
type MoveKind uint8

const (
	NormalMove MoveKind = iota
	DoublePawnPush
	EnPassantCapture
	CastleKingSide
	CastleQueenSide
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "DoublePawnPush", "EnPassantCapture", "CastleKingSide", "CastleQueenSide"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is a move from one square to another. The kind is derived from the
// board when the move is generated or resolved and cannot be set directly.
type Move struct {
	from      chess.Square
	to        chess.Square
	promotion chess.Piece
	kind      MoveKind
}

// From returns the origin square.
func (m Move) From() chess.Square { return m.from }

// To returns the destination square.
func (m Move) To() chess.Square { return m.to }

// Promotion returns the promotion piece type, or chess.Empty.
func (m Move) Promotion() chess.Piece { return m.promotion }

// Kind returns the move kind.
func (m Move) Kind() MoveKind { return m.kind }

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.promotion != chess.Empty && m.promotion != chess.Off
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.kind == CastleKingSide || m.kind == CastleQueenSide
}

// Coordinate returns the syntactic form of the move.
func (m Move) Coordinate() chess.Coordinate {
	return chess.Coordinate{From: m.from, To: m.to, Promotion: m.promotion}
}

// String returns the move in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	return m.Coordinate().String()
}

// IsCapture returns true if the move takes a piece on the given board.
func IsCapture(board *Board, m Move) bool {
	return m.kind == EnPassantCapture || board.cells[m.to].IsPiece()
}

// NewMove builds a move for the side to move, deriving its kind from the
// board. It checks the move's shape (own piece on the origin, a reachable
// destination, promotion piece present exactly when a pawn reaches the last
// rank) but not whether it leaves the king in check.
func NewMove(board *Board, from, to chess.Square, promotion chess.Piece) (Move, error) {
	if promotion == chess.Off {
		promotion = chess.Empty
	}
	kind, ok := deriveKind(board, from, to, promotion)
	if !ok {
		m := Move{from: from, to: to, promotion: promotion}
		return Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.String(), FEN: board.FEN()}
	}
	return Move{from: from, to: to, promotion: promotion, kind: kind}, nil
}

// ParseMove resolves coordinate notation against the legal moves of the
// board. Text that is malformed or names no legal move yields an error
// wrapping errors.ErrIllegalMove.
func ParseMove(board *Board, text string) (Move, error) {
	coord, err := chess.ParseCoordinate(text)
	if err != nil {
		return Move{}, &errors.MoveError{Err: errors.Wrap(errors.ErrIllegalMove, err.Error()), MoveText: text, FEN: board.FEN()}
	}
	for _, m := range LegalMoves(board) {
		if m.from == coord.From && m.to == coord.To && m.promotion == coord.Promotion {
			return m, nil
		}
	}
	return Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text, FEN: board.FEN()}
}

// deriveKind classifies a from/to pair on the board, reporting false when
// the pair is not a geometrically possible move for the side to move.
func deriveKind(board *Board, from, to chess.Square, promotion chess.Piece) (MoveKind, bool) {
	if !from.IsValid() || !to.IsValid() || from == to {
		return 0, false
	}
	us := board.sideToMove
	mover := board.cells[from]
	if !mover.IsPiece() || mover.Colour() != us || !board.cells[to].Enterable(us) {
		return 0, false
	}

	if mover.Piece() != chess.Pawn {
		if promotion != chess.Empty {
			return 0, false
		}
		if mover.Piece() == chess.King {
			if side, ok := castleSideFor(board, from, to); ok {
				return side.kind, true
			}
		}
		if !pieceReaches(board, mover.Piece(), from, to) {
			return 0, false
		}
		return NormalMove, true
	}

	dir := chess.ColourOffset(us)
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	lastRank := to.Rank() == chess.HomeRank(us.Opposite())
	if lastRank != (promotion != chess.Empty) {
		return 0, false
	}
	if promotion != chess.Empty && (promotion < chess.Knight || promotion > chess.Queen) {
		return 0, false
	}

	switch {
	case df == 0 && dr == dir:
		if board.cells[to].IsEmpty() {
			return NormalMove, true
		}
	case df == 0 && dr == 2*dir:
		mid, _ := from.Offset(0, dir)
		if from.Rank() == chess.PawnRank(us) && board.cells[mid].IsEmpty() && board.cells[to].IsEmpty() {
			return DoublePawnPush, true
		}
	case abs(df) == 1 && dr == dir:
		if board.cells[to].IsPiece() {
			return NormalMove, true
		}
		if to == board.enPassant && board.cells[chess.NewSquare(to.File(), from.Rank())].Is(us.Opposite(), chess.Pawn) {
			return EnPassantCapture, true
		}
	}
	return 0, false
}

// pieceReaches reports whether a non-pawn piece on from attacks to along an
// unobstructed path.
func pieceReaches(board *Board, piece chess.Piece, from, to chess.Square) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	switch piece {
	case chess.Knight:
		return (abs(df) == 1 && abs(dr) == 2) || (abs(df) == 2 && abs(dr) == 1)
	case chess.King:
		return abs(df) <= 1 && abs(dr) <= 1
	case chess.Bishop:
		if abs(df) != abs(dr) {
			return false
		}
	case chess.Rook:
		if df != 0 && dr != 0 {
			return false
		}
	case chess.Queen:
		if abs(df) != abs(dr) && df != 0 && dr != 0 {
			return false
		}
	default:
		return false
	}
	return isPathClear(board, from, to)
}

// isPathClear checks that every square strictly between from and to is empty.
func isPathClear(board *Board, from, to chess.Square) bool {
	fileDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	cur, _ := from.Offset(fileDir, rankDir)
	for cur != to {
		if !board.cells[cur].IsEmpty() {
			return false
		}
		cur, _ = cur.Offset(fileDir, rankDir)
	}
	return true
}
