package chess

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// KingSide returns the king-side flag for a colour.
func KingSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

// QueenSide returns the queen-side flag for a colour.
func QueenSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// BothSides returns both flags for a colour.
func BothSides(colour Colour) CastlingRights {
	return KingSide(colour) | QueenSide(colour)
}

// Has reports whether every flag in want is held.
func (r CastlingRights) Has(want CastlingRights) bool {
	return r&want == want && want != NoCastling
}

// Without returns the rights with the given flags revoked.
func (r CastlingRights) Without(revoke CastlingRights) CastlingRights {
	return r &^ revoke
}

// String returns the FEN castling field, "-" when no rights remain.
func (r CastlingRights) String() string {
	var buf [4]byte
	n := 0
	for i, letter := range []byte("KQkq") {
		if r&(1<<i) != 0 {
			buf[n] = letter
			n++
		}
	}
	if n == 0 {
		return "-"
	}
	return string(buf[:n])
}

// ParseCastlingRights parses a FEN castling field. Letters must appear at most
// once and in KQkq order; "-" means no rights.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" {
		return NoCastling, false
	}
	rights := NoCastling
	last := -1
	for _, c := range []byte(s) {
		idx := -1
		switch c {
		case 'K':
			idx = 0
		case 'Q':
			idx = 1
		case 'k':
			idx = 2
		case 'q':
			idx = 3
		}
		if idx <= last {
			return NoCastling, false
		}
		last = idx
		rights |= 1 << idx
	}
	return rights, true
}
