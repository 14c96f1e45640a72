package chess_test

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestColour(t *testing.T) {
	testutil.AssertEqual(t, chess.White.Opposite(), chess.Black)
	testutil.AssertEqual(t, chess.Black.Opposite(), chess.White)
	testutil.AssertEqual(t, chess.White.String(), "White")
	testutil.AssertEqual(t, chess.Black.String(), "Black")
	testutil.AssertEqual(t, chess.White.Letter(), byte('w'))
	testutil.AssertEqual(t, chess.Black.Letter(), byte('b'))
	testutil.AssertEqual(t, chess.ColourOffset(chess.White), 1)
	testutil.AssertEqual(t, chess.ColourOffset(chess.Black), -1)
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		want   chess.Piece
	}{
		{'K', chess.King}, {'k', chess.King},
		{'Q', chess.Queen}, {'q', chess.Queen},
		{'R', chess.Rook}, {'r', chess.Rook},
		{'B', chess.Bishop}, {'b', chess.Bishop},
		{'N', chess.Knight}, {'n', chess.Knight},
		{'P', chess.Pawn}, {'p', chess.Pawn},
		{'x', chess.Empty}, {'1', chess.Empty}, {' ', chess.Empty},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			testutil.AssertEqual(t, chess.PieceFromLetter(tt.letter), tt.want)
		})
	}
}

func TestPiece_StringAndLetter(t *testing.T) {
	testutil.AssertEqual(t, chess.Knight.String(), "Knight")
	testutil.AssertEqual(t, chess.Piece(99).String(), "Unknown")
	testutil.AssertEqual(t, chess.Queen.Letter(), byte('Q'))
	testutil.AssertEqual(t, chess.Piece(-1).Letter(), byte('?'))
	testutil.AssertTrue(t, chess.Bishop.IsSlider())
	testutil.AssertTrue(t, chess.Queen.IsSlider())
	testutil.AssertFalse(t, chess.Knight.IsSlider())
	testutil.AssertFalse(t, chess.King.IsSlider())
}

func TestCell(t *testing.T) {
	tests := []struct {
		name       string
		cell       chess.Cell
		wantEmpty  bool
		wantOff    bool
		wantPiece  chess.Piece
		wantLetter byte
	}{
		{"off", chess.OffCell, false, true, chess.Off, '.'},
		{"empty", chess.EmptyCell, true, false, chess.Empty, '.'},
		{"white king", chess.W(chess.King), false, false, chess.King, 'K'},
		{"black pawn", chess.B(chess.Pawn), false, false, chess.Pawn, 'p'},
		{"black queen", chess.MakeCell(chess.Black, chess.Queen), false, false, chess.Queen, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.cell.IsEmpty(), tt.wantEmpty)
			testutil.AssertEqual(t, tt.cell.IsOff(), tt.wantOff)
			testutil.AssertEqual(t, tt.cell.IsPiece(), !tt.wantEmpty && !tt.wantOff)
			testutil.AssertEqual(t, tt.cell.Piece(), tt.wantPiece)
			testutil.AssertEqual(t, tt.cell.Letter(), tt.wantLetter)
		})
	}
}

func TestCell_ColourAndIs(t *testing.T) {
	wn := chess.W(chess.Knight)
	testutil.AssertEqual(t, wn.Colour(), chess.White)
	testutil.AssertTrue(t, wn.Is(chess.White, chess.Knight))
	testutil.AssertFalse(t, wn.Is(chess.Black, chess.Knight))
	testutil.AssertFalse(t, wn.Is(chess.White, chess.Bishop))
	testutil.AssertEqual(t, chess.B(chess.Rook).Colour(), chess.Black)
	testutil.AssertEqual(t, wn.String(), "White Knight")
	testutil.AssertEqual(t, chess.EmptyCell.String(), "Empty")
}

func TestCell_Enterable(t *testing.T) {
	tests := []struct {
		name string
		cell chess.Cell
		by   chess.Colour
		want bool
	}{
		{"empty square", chess.EmptyCell, chess.White, true},
		{"enemy piece", chess.B(chess.Rook), chess.White, true},
		{"own piece", chess.W(chess.Rook), chess.White, false},
		{"off board", chess.OffCell, chess.Black, false},
		{"black captures white", chess.W(chess.Pawn), chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.cell.Enterable(tt.by), tt.want)
		})
	}
}

func TestCellFromLetter(t *testing.T) {
	for _, letter := range []byte("KQRBNPkqrbnp") {
		cell, ok := chess.CellFromLetter(letter)
		testutil.AssertTrue(t, ok, "letter %c", letter)
		testutil.AssertEqual(t, cell.Letter(), letter)
	}

	_, ok := chess.CellFromLetter('z')
	testutil.AssertFalse(t, ok)
}

func TestColourPieceTable(t *testing.T) {
	var table chess.ColourPieceTable[int]
	table.Set(chess.White, chess.Queen, 9)
	testutil.AssertEqual(t, table.Get(chess.White, chess.Queen), 9)
	testutil.AssertEqual(t, table.Get(chess.Black, chess.Queen), 0)
	testutil.AssertEqual(t, table.At(chess.W(chess.Queen)), 9)

	chess.CountPiece(&table, chess.B(chess.Pawn))
	chess.CountPiece(&table, chess.B(chess.Pawn))
	testutil.AssertEqual(t, table.Get(chess.Black, chess.Pawn), 2)
	testutil.AssertEqual(t, table.Get(chess.White, chess.Pawn), 0)
}
