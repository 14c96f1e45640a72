package chess

import "fmt"

// Coordinate is the syntactic form of a move in coordinate notation:
// origin, destination and an optional promotion piece (Empty if none).
// It carries no board knowledge; the engine resolves it into a move.
type Coordinate struct {
	From      Square
	To        Square
	Promotion Piece
}

// ParseCoordinate parses four- or five-character coordinate notation such as
// "e2e4" or "e7e8q". The promotion letter is accepted in either case.
func ParseCoordinate(text string) (Coordinate, error) {
	if len(text) != 4 && len(text) != 5 {
		return Coordinate{}, fmt.Errorf("move %q: want 4 or 5 characters", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Coordinate{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Coordinate{}, fmt.Errorf("move %q: %w", text, err)
	}
	c := Coordinate{From: from, To: to, Promotion: Empty}
	if len(text) == 5 {
		promo := PieceFromLetter(text[4])
		if promo != Knight && promo != Bishop && promo != Rook && promo != Queen {
			return Coordinate{}, fmt.Errorf("move %q: invalid promotion letter %q", text, text[4])
		}
		c.Promotion = promo
	}
	return c, nil
}

// String returns the coordinate notation, with a lowercase promotion letter.
func (c Coordinate) String() string {
	s := c.From.String() + c.To.String()
	if c.Promotion != Empty && c.Promotion != Off {
		s += string(c.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
