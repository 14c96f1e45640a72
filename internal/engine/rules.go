package engine

import "github.com/lgbarn/chesscore/internal/chess"

// FiftyMoveHalfmoves is the halfmove clock value at which a draw may be claimed.
const FiftyMoveHalfmoves = 100

// RepetitionCounter reports how many times a position has occurred in the
// caller's game history, the given occurrence included.
type RepetitionCounter interface {
	Repetitions(board *Board) int
}

// DrawReason names the rule under which a position is drawn.
type DrawReason uint8

const (
	NoDraw DrawReason = iota
	DrawByStalemate
	DrawByFiftyMoves
	DrawByRepetition
	DrawByInsufficientMaterial
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case NoDraw:
		return "none"
	case DrawByStalemate:
		return "stalemate"
	case DrawByFiftyMoves:
		return "fifty-move rule"
	case DrawByRepetition:
		return "threefold repetition"
	case DrawByInsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// FiftyMoveRule returns true once fifty moves by each side have passed
// without a pawn move or capture.
func FiftyMoveRule(board *Board) bool {
	return board.halfmoveClock >= FiftyMoveHalfmoves
}

// DrawState checks the draw conditions in order: stalemate, insufficient
// material, threefold repetition (skipped when history is nil), then the
// fifty-move rule. A checkmate always returns NoDraw.
func DrawState(board *Board, history RepetitionCounter) DrawReason {
	switch Classify(board) {
	case Checkmate:
		return NoDraw
	case Stalemate:
		return DrawByStalemate
	}
	if HasInsufficientMaterial(board) {
		return DrawByInsufficientMaterial
	}
	if history != nil && history.Repetitions(board) >= 3 {
		return DrawByRepetition
	}
	if FiftyMoveRule(board) {
		return DrawByFiftyMoves
	}
	return NoDraw
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *Board) bool {
	var minors [2][]chess.Piece
	var bishopOnLight [2]bool

	for sq := chess.A1; sq <= chess.H8; sq++ {
		c := board.cells[sq]
		if !c.IsPiece() {
			continue
		}
		switch piece := c.Piece(); piece {
		case chess.King:
			// Kings don't count for material
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		default:
			colour := c.Colour()
			minors[colour] = append(minors[colour], piece)
			if piece == chess.Bishop {
				bishopOnLight[colour] = sq.IsLight()
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]

	// K vs K
	if len(white) == 0 && len(black) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(white) == 0 && len(black) == 1 {
		return true
	}
	if len(black) == 0 && len(white) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(white) == 1 && len(black) == 1 && white[0] == chess.Bishop && black[0] == chess.Bishop {
		return bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}

	return false
}
