package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// UndoRecord holds what MakeMove overwrote, enough to restore the board
// exactly. It is owned by the caller until passed to Undo.
type UndoRecord struct {
	Move  Move
	Moved chess.Cell // The moving piece before any promotion

	Captured   chess.Cell   // EmptyCell when nothing was taken
	CapturedOn chess.Square // NoSquare when nothing was taken

	Castling      chess.CastlingRights
	EnPassant     chess.Square
	HalfmoveClock uint
}

// Apply plays a legal move on a copy of the board and returns the successor
// together with the undo record that restores the original from it.
func Apply(board *Board, m Move) (*Board, UndoRecord, error) {
	next := board.Copy()
	u, err := MakeMove(next, m)
	if err != nil {
		return nil, UndoRecord{}, err
	}
	return next, u, nil
}

// MakeMove plays a move in place. The move must be legal on the board:
// its kind must match what the board implies and it must not leave the
// mover's king attacked. On error the board is unchanged.
func MakeMove(board *Board, m Move) (UndoRecord, error) {
	kind, ok := deriveKind(board, m.from, m.to, m.promotion)
	if !ok || kind != m.kind {
		return UndoRecord{}, illegal(board, m)
	}
	us := board.sideToMove
	u := makeMove(board, m)
	if InCheck(board, us) {
		unmakeMove(board, u)
		return UndoRecord{}, illegal(board, m)
	}
	return u, nil
}

// Undo reverses the move described by u. The record must be the one
// returned for the most recent move on this board; otherwise an error
// wrapping errors.ErrInconsistentUndo is returned and the board is left
// untouched.
func Undo(board *Board, u UndoRecord) error {
	if err := checkUndo(board, u); err != nil {
		return err
	}
	unmakeMove(board, u)
	return nil
}

func illegal(board *Board, m Move) error {
	return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.String(), FEN: board.FEN()}
}

// makeMove applies every side effect of m without validation.
func makeMove(b *Board, m Move) UndoRecord {
	us := b.sideToMove
	moved := b.cells[m.from]
	u := UndoRecord{
		Move:          m,
		Moved:         moved,
		Captured:      chess.EmptyCell,
		CapturedOn:    chess.NoSquare,
		Castling:      b.castling,
		EnPassant:     b.enPassant,
		HalfmoveClock: b.halfmoveClock,
	}

	// The en passant victim sits beside the origin, not on the destination.
	capturedOn := m.to
	if m.kind == EnPassantCapture {
		capturedOn = chess.NewSquare(m.to.File(), m.from.Rank())
	}
	if c := b.cells[capturedOn]; c.IsPiece() {
		u.Captured = c
		u.CapturedOn = capturedOn
		b.cells[capturedOn] = chess.EmptyCell
	}

	placed := moved
	if m.IsPromotion() {
		placed = chess.MakeCell(us, m.promotion)
	}
	b.cells[m.from] = chess.EmptyCell
	b.put(m.to, placed)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.kind, us)
		b.cells[rookTo] = b.cells[rookFrom]
		b.cells[rookFrom] = chess.EmptyCell
	}

	b.castling = b.castling.Without(rightsTouchedBy(m.from) | rightsTouchedBy(m.to))

	b.enPassant = chess.NoSquare
	if m.kind == DoublePawnPush && enemyPawnBeside(b, m.to, us.Opposite()) {
		b.enPassant, _ = m.from.Offset(0, chess.ColourOffset(us))
	}

	if moved.Piece() == chess.Pawn || u.Captured.IsPiece() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == chess.Black {
		b.fullmoveNumber++
	}
	b.sideToMove = us.Opposite()
	return u
}

// unmakeMove restores the board from u without validation.
func unmakeMove(b *Board, u UndoRecord) {
	m := u.Move
	us := b.sideToMove.Opposite()
	b.sideToMove = us
	if us == chess.Black {
		b.fullmoveNumber--
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.kind, us)
		b.cells[rookFrom] = b.cells[rookTo]
		b.cells[rookTo] = chess.EmptyCell
	}

	b.cells[m.to] = chess.EmptyCell
	b.put(m.from, u.Moved)
	if u.CapturedOn != chess.NoSquare {
		b.cells[u.CapturedOn] = u.Captured
	}

	b.castling = u.Castling
	b.enPassant = u.EnPassant
	b.halfmoveClock = u.HalfmoveClock
}

// enemyPawnBeside reports whether a pawn of colour stands on a file next
// to sq, on the same rank.
func enemyPawnBeside(b *Board, sq chess.Square, colour chess.Colour) bool {
	for _, df := range [2]int{-1, 1} {
		if n, ok := sq.Offset(df, 0); ok && b.cells[n].Is(colour, chess.Pawn) {
			return true
		}
	}
	return false
}

// checkUndo verifies that the board is in the state makeMove would have
// left it in for u.
func checkUndo(b *Board, u UndoRecord) error {
	m := u.Move
	inconsistent := func(reason string) error {
		return &errors.MoveError{
			Err:      errors.Wrap(errors.ErrInconsistentUndo, reason),
			MoveText: m.String(),
			FEN:      b.FEN(),
		}
	}

	if !m.from.IsValid() || !m.to.IsValid() || !u.Moved.IsPiece() {
		return inconsistent("record does not describe a move")
	}
	us := u.Moved.Colour()
	if b.sideToMove != us.Opposite() {
		return inconsistent("side to move does not follow the recorded mover")
	}
	if us == chess.Black && b.fullmoveNumber < 2 {
		return inconsistent("fullmove number too small")
	}
	if !b.cells[m.from].IsEmpty() {
		return inconsistent("origin square is occupied")
	}
	want := u.Moved
	if m.IsPromotion() {
		want = chess.MakeCell(us, m.promotion)
	}
	if b.cells[m.to] != want {
		return inconsistent("moved piece not on destination")
	}
	if u.CapturedOn != chess.NoSquare {
		if !u.CapturedOn.IsValid() || !u.Captured.IsPiece() || u.Captured.Colour() == us {
			return inconsistent("captured piece is invalid")
		}
		if u.CapturedOn != m.to && !b.cells[u.CapturedOn].IsEmpty() {
			return inconsistent("capture square is occupied")
		}
	}
	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.kind, us)
		if !b.cells[rookTo].Is(us, chess.Rook) || !b.cells[rookFrom].IsEmpty() {
			return inconsistent("castled rook not in place")
		}
	}
	if b.castling != u.Castling.Without(rightsTouchedBy(m.from)|rightsTouchedBy(m.to)) {
		return inconsistent("castling rights do not follow from the record")
	}

	resets := u.Moved.Piece() == chess.Pawn || u.CapturedOn != chess.NoSquare
	if resets && b.halfmoveClock != 0 {
		return inconsistent("halfmove clock not reset by pawn move or capture")
	}
	if !resets && b.halfmoveClock != u.HalfmoveClock+1 {
		return inconsistent("halfmove clock does not follow the record")
	}

	if m.kind == EnPassantCapture && u.EnPassant != m.to {
		return inconsistent("en passant capture without a matching target")
	}
	if u.EnPassant != chess.NoSquare {
		prior := *b
		unmakeMove(&prior, u)
		if prior.validateEnPassant() != nil {
			return inconsistent("restored en passant target has no pushed pawn")
		}
		pushed, _ := u.EnPassant.Offset(0, chess.ColourOffset(us.Opposite()))
		if !enemyPawnBeside(&prior, pushed, us) {
			return inconsistent("restored en passant target cannot be captured")
		}
	}
	return nil
}
