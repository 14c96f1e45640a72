// Package engine provides the chess rules core: board state, position
// serialization, attack detection, move generation, move application and
// position classification.
package engine

import (
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Board represents a chess position with all state needed for play.
// Its fields are only changed by the move applier (MakeMove, Undo); every
// other caller sees it through the read-only accessors.
type Board struct {
	cells [chess.BoardSize * chess.BoardSize]chess.Cell

	// Who has the next move.
	sideToMove chess.Colour

	castling chess.CastlingRights

	// The square skipped by the last double pawn push, or NoSquare.
	enPassant chess.Square

	// The half-move clock since the last pawn move or capture.
	halfmoveClock uint

	// Incremented after Black's move.
	fullmoveNumber uint

	// Keep track of where the two kings are for check detection.
	kings [2]chess.Square
}

// newEmptyBoard creates a board with no pieces and White to move.
func newEmptyBoard() *Board {
	b := &Board{
		sideToMove:     chess.White,
		enPassant:      chess.NoSquare,
		fullmoveNumber: 1,
		kings:          [2]chess.Square{chess.NoSquare, chess.NoSquare},
	}
	for sq := range b.cells {
		b.cells[sq] = chess.EmptyCell
	}
	return b
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := newEmptyBoard()
	backRank := []chess.Piece{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file, piece := range backRank {
		b.put(chess.NewSquare(file, 0), chess.W(piece))
		b.put(chess.NewSquare(file, 1), chess.W(chess.Pawn))
		b.put(chess.NewSquare(file, 6), chess.B(chess.Pawn))
		b.put(chess.NewSquare(file, 7), chess.B(piece))
	}
	b.castling = chess.AllCastling
	return b
}

// CellAt returns the content of a square. Squares off the board return the
// Off sentinel.
func (b *Board) CellAt(sq chess.Square) chess.Cell {
	if !sq.IsValid() {
		return chess.OffCell
	}
	return b.cells[sq]
}

// SideToMove returns the colour whose turn it is.
func (b *Board) SideToMove() chess.Colour {
	return b.sideToMove
}

// CastlingRights returns the castling flags still held.
func (b *Board) CastlingRights() chess.CastlingRights {
	return b.castling
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (chess.Square, bool) {
	return b.enPassant, b.enPassant != chess.NoSquare
}

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func (b *Board) HalfmoveClock() uint {
	return b.halfmoveClock
}

// FullmoveNumber returns the current move number.
func (b *Board) FullmoveNumber() uint {
	return b.fullmoveNumber
}

// KingSquare returns the square of the given colour's king.
func (b *Board) KingSquare(colour chess.Colour) chess.Square {
	return b.kings[colour]
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold the same position, including
// castling rights, en passant target and both counters.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return *b == *other
}

// String returns an ASCII diagram of the board, rank 8 first, followed by
// the FEN.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.cells[chess.NewSquare(file, rank)].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(b.FEN())
	return sb.String()
}

// put places a cell on a square, tracking king locations.
func (b *Board) put(sq chess.Square, c chess.Cell) {
	b.cells[sq] = c
	if c.Piece() == chess.King {
		b.kings[c.Colour()] = sq
	}
}

// validate checks that a freshly constructed board describes a reachable
// kind of position: one king per side, kings apart, no pawns on the back
// ranks, plausible material, castling rights backed by unmoved pieces and
// the side not to move not in check.
func (b *Board) validate() error {
	var counts chess.ColourPieceTable[int]
	for sq := chess.A1; sq <= chess.H8; sq++ {
		c := b.cells[sq]
		if !c.IsPiece() {
			continue
		}
		chess.CountPiece(&counts, c)
		if c.Piece() == chess.Pawn && (sq.Rank() == 0 || sq.Rank() == chess.BoardSize-1) {
			return errors.Malformed("placement", sq.String(), "pawn on first or last rank")
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := counts.Get(colour, chess.King); n != 1 {
			return errors.Malformed("placement", "", colour.String()+" must have exactly one king")
		}
		if counts.Get(colour, chess.Pawn) > 8 {
			return errors.Malformed("placement", "", colour.String()+" has more than eight pawns")
		}
		total := 0
		for p := chess.Pawn; p <= chess.King; p++ {
			total += counts.Get(colour, p)
		}
		if total > 16 {
			return errors.Malformed("placement", "", colour.String()+" has more than sixteen pieces")
		}
	}

	wk, bk := b.kings[chess.White], b.kings[chess.Black]
	if abs(wk.File()-bk.File()) <= 1 && abs(wk.Rank()-bk.Rank()) <= 1 {
		return errors.Malformed("placement", "", "kings on adjacent squares")
	}

	if err := b.validateCastling(); err != nil {
		return err
	}
	if err := b.validateEnPassant(); err != nil {
		return err
	}

	if InCheck(b, b.sideToMove.Opposite()) {
		return errors.Malformed("side", string(b.sideToMove.Letter()), "side not to move is in check")
	}
	return nil
}

// validateCastling requires every held right to have its king and rook on
// their home squares.
func (b *Board) validateCastling() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		king := chess.NewSquare(4, home)
		for _, side := range []castleSide{kingSide, queenSide} {
			right := side.right(colour)
			if !b.castling.Has(right) {
				continue
			}
			rook := chess.NewSquare(side.rookFile, home)
			if !b.cells[king].Is(colour, chess.King) || !b.cells[rook].Is(colour, chess.Rook) {
				return errors.Malformed("castling", right.String(), "king or rook not on its home square")
			}
		}
	}
	return nil
}

// validateEnPassant requires the target to sit behind a pawn of the side
// that just moved, on an empty square of the correct rank.
func (b *Board) validateEnPassant() error {
	ep := b.enPassant
	if ep == chess.NoSquare {
		return nil
	}
	mover := b.sideToMove.Opposite()
	wantRank := chess.PawnRank(mover) + chess.ColourOffset(mover)
	if ep.Rank() != wantRank {
		return errors.Malformed("en passant", ep.String(), "target on wrong rank for side to move")
	}
	pushed, _ := ep.Offset(0, chess.ColourOffset(mover))
	origin, _ := ep.Offset(0, -chess.ColourOffset(mover))
	if !b.cells[ep].IsEmpty() || !b.cells[origin].IsEmpty() || !b.cells[pushed].Is(mover, chess.Pawn) {
		return errors.Malformed("en passant", ep.String(), "no double-pushed pawn in front of target")
	}
	return nil
}

// clearDeadEnPassant drops an en passant target that no pawn of the side to
// move stands beside, the same rule the move applier uses when setting one.
func (b *Board) clearDeadEnPassant() {
	if b.enPassant == chess.NoSquare {
		return
	}
	pushed, _ := b.enPassant.Offset(0, chess.ColourOffset(b.sideToMove.Opposite()))
	if !enemyPawnBeside(b, pushed, b.sideToMove) {
		b.enPassant = chess.NoSquare
	}
}
