package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. All six fields are
// required. Any syntax error or impossible placement is reported as an
// error wrapping errors.ErrMalformedPosition. An en passant target that
// no pawn of the side to move could capture onto is dropped, so the board
// equals the one reached by playing the double push.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, errors.Malformed("fen", fen, "want 6 space-separated fields, got "+strconv.Itoa(len(parts)))
	}

	board := newEmptyBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	if err := board.validate(); err != nil {
		return nil, err
	}
	board.clearDeadEnPassant()
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Malformed("placement", positions, "want 8 ranks, got "+strconv.Itoa(len(ranks)))
	}

	for i, text := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			switch {
			case c >= '1' && c <= '8':
				if j > 0 && text[j-1] >= '1' && text[j-1] <= '8' {
					return errors.Malformed("placement", text, "consecutive empty-square digits")
				}
				file += int(c - '0')
			default:
				cell, ok := chess.CellFromLetter(c)
				if !ok {
					return errors.Malformed("placement", string(c), "invalid piece character")
				}
				if file >= chess.BoardSize {
					return errors.Malformed("placement", text, "rank has more than 8 squares")
				}
				board.put(chess.NewSquare(file, rank), cell)
				file++
			}
			if file > chess.BoardSize {
				return errors.Malformed("placement", text, "rank has more than 8 squares")
			}
		}
		if file != chess.BoardSize {
			return errors.Malformed("placement", text, "rank has "+strconv.Itoa(file)+" squares")
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *Board, side string) error {
	switch side {
	case "w":
		board.sideToMove = chess.White
	case "b":
		board.sideToMove = chess.Black
	default:
		return errors.Malformed("side", side, "want w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *Board, rights string) error {
	parsed, ok := chess.ParseCastlingRights(rights)
	if !ok {
		return errors.Malformed("castling", rights, "want a subset of KQkq in that order, or -")
	}
	board.castling = parsed
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *Board, ep string) error {
	if ep == "-" {
		board.enPassant = chess.NoSquare
		return nil
	}
	sq, err := chess.ParseSquare(ep)
	if err != nil {
		return errors.Malformed("en passant", ep, "want a square or -")
	}
	board.enPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return errors.Malformed("halfmove", halfmove, "not a non-negative integer")
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || fm == 0 {
		return errors.Malformed("fullmove", fullmove, "not a positive integer")
	}
	board.halfmoveClock = uint(hm)
	board.fullmoveNumber = uint(fm)
	return nil
}

// FEN converts the board to a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	sb.WriteByte(b.sideToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.fullmoveNumber), 10))

	return sb.String()
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *Board) string {
	return board.FEN()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			cell := board.cells[chess.NewSquare(file, rank)]
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cell.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
