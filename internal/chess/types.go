// Package chess provides the value types shared by the rules core: colours,
// piece types, board cells, squares and castling rights.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Off the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// PromotionPieces lists the piece types a pawn may promote to, in generation order.
var PromotionPieces = [4]Piece{Knight, Bishop, Rook, Queen}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// PieceFromLetter converts a piece letter of either case to a piece type.
// It returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Cell is the content of one board square: Off, Empty, or a coloured piece
// encoded as piece<<PieceShift | colour.
type Cell uint8

const (
	OffCell   = Cell(Off)
	EmptyCell = Cell(Empty)
)

// MakeCell creates a coloured piece cell.
func MakeCell(colour Colour, piece Piece) Cell {
	return Cell((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Cell {
	return MakeCell(White, piece)
}

// B creates a black piece.
func B(piece Piece) Cell {
	return MakeCell(Black, piece)
}

// IsEmpty reports whether the cell is an on-board empty square.
func (c Cell) IsEmpty() bool {
	return c == EmptyCell
}

// IsOff reports whether the cell is the off-board sentinel.
func (c Cell) IsOff() bool {
	return c == OffCell
}

// IsPiece reports whether the cell holds a piece.
func (c Cell) IsPiece() bool {
	return c > EmptyCell
}

// Piece extracts the piece type. Off and Empty cells return Off and Empty.
func (c Cell) Piece() Piece {
	if !c.IsPiece() {
		return Piece(c)
	}
	return Piece(c >> PieceShift)
}

// Colour extracts the colour of a piece cell. The result is meaningless for
// Off and Empty cells.
func (c Cell) Colour() Colour {
	return Colour(c & 0x01)
}

// Is reports whether the cell holds the given coloured piece.
func (c Cell) Is(colour Colour, piece Piece) bool {
	return c == MakeCell(colour, piece)
}

// Enterable reports whether a piece of colour by may move onto the cell:
// it must be on the board and either empty or held by the opponent.
func (c Cell) Enterable(by Colour) bool {
	return c == EmptyCell || (c.IsPiece() && c.Colour() != by)
}

// Letter returns the FEN letter for the cell: uppercase for White,
// lowercase for Black, '.' for empty squares.
func (c Cell) Letter() byte {
	if !c.IsPiece() {
		return '.'
	}
	letter := c.Piece().Letter()
	if c.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (c Cell) String() string {
	if !c.IsPiece() {
		return c.Piece().String()
	}
	return c.Colour().String() + " " + c.Piece().String()
}

// CellFromLetter converts a FEN piece letter to a cell.
func CellFromLetter(letter byte) (Cell, bool) {
	piece := PieceFromLetter(letter)
	if piece == Empty {
		return EmptyCell, false
	}
	colour := White
	if letter >= 'a' && letter <= 'z' {
		colour = Black
	}
	return MakeCell(colour, piece), true
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
