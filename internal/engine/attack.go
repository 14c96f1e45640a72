package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Offsets are {file delta, rank delta} pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsAttacked returns true if the square is attacked by the given colour.
//
// Each attack pattern is cast outward from sq as if a piece of that type
// stood there; the square is attacked when a matching enemy piece sits on
// the pattern. Every piece blocks rays, the defending king included, so a
// caller probing king escape squares must remove the king first.
func IsAttacked(board *Board, sq chess.Square, byColour chess.Colour) bool {
	return Attackers(board, sq, byColour, 1) > 0
}

// Attackers counts the pieces of byColour attacking sq. Counting stops once
// limit attackers are found; a limit of zero or less counts them all.
func Attackers(board *Board, sq chess.Square, byColour chess.Colour, limit int) int {
	if !sq.IsValid() {
		return 0
	}
	found := 0
	hit := func() bool {
		found++
		return limit > 0 && found >= limit
	}

	// Check pawn attacks: a pawn of byColour attacks from one rank behind.
	pawn := chess.MakeCell(byColour, chess.Pawn)
	back := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, back); ok && board.cells[from] == pawn {
			if hit() {
				return found
			}
		}
	}

	// Check knight attacks
	knight := chess.MakeCell(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.cells[from] == knight {
			if hit() {
				return found
			}
		}
	}

	// Check king attacks
	king := chess.MakeCell(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.cells[from] == king {
			if hit() {
				return found
			}
		}
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.MakeCell(byColour, chess.Queen)
	sliders := [2]struct {
		dirs  [4][2]int
		piece chess.Cell
	}{
		{diagonalDirs, chess.MakeCell(byColour, chess.Bishop)},
		{straightDirs, chess.MakeCell(byColour, chess.Rook)},
	}
	for _, s := range sliders {
		for _, dir := range s.dirs {
			if first, ok := firstPieceOnRay(board, sq, dir); ok {
				if c := board.cells[first]; c == s.piece || c == queen {
					if hit() {
						return found
					}
				}
			}
		}
	}

	return found
}

// firstPieceOnRay walks from sq (exclusive) in direction dir and returns the
// first occupied square.
func firstPieceOnRay(board *Board, sq chess.Square, dir [2]int) (chess.Square, bool) {
	cur := sq
	for {
		next, ok := cur.Offset(dir[0], dir[1])
		if !ok {
			return chess.NoSquare, false
		}
		if board.cells[next].IsPiece() {
			return next, true
		}
		cur = next
	}
}

// InCheck returns true if the given colour's king is attacked.
func InCheck(board *Board, colour chess.Colour) bool {
	king := board.kings[colour]
	if !king.IsValid() {
		return false
	}
	return IsAttacked(board, king, colour.Opposite())
}

// CheckCount returns how many pieces give check to the side to move, stopping
// at two.
func CheckCount(board *Board) int {
	us := board.sideToMove
	king := board.kings[us]
	if !king.IsValid() {
		return 0
	}
	return Attackers(board, king, us.Opposite(), 2)
}
