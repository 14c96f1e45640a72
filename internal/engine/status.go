package engine

// Status is the classification of a position for the side to move.
type Status uint8

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsTerminal returns true if the game cannot continue from this position.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Classify reports whether the side to move is in check, mated, stalemated
// or none of these.
func Classify(board *Board) Status {
	inCheck := InCheck(board, board.sideToMove)
	canMove := HasLegalMoves(board)
	switch {
	case inCheck && canMove:
		return Check
	case inCheck:
		return Checkmate
	case !canMove:
		return Stalemate
	}
	return Normal
}
