package chess

// ColourPieceTable is a fixed-size lookup table keyed by colour and piece
// type, replacing ad hoc arrays indexed by raw enum values.
type ColourPieceTable[T any] struct {
	entries [2][NumPieceValues]T
}

// Get returns the entry for a colour and piece type.
func (t *ColourPieceTable[T]) Get(colour Colour, piece Piece) T {
	return t.entries[colour][piece]
}

// Set stores the entry for a colour and piece type.
func (t *ColourPieceTable[T]) Set(colour Colour, piece Piece, v T) {
	t.entries[colour][piece] = v
}

// At returns the entry for a piece cell. It must not be called with Off or
// Empty cells.
func (t *ColourPieceTable[T]) At(c Cell) T {
	return t.entries[c.Colour()][c.Piece()]
}

// CountPiece increments the tally for the piece held by c.
func CountPiece(t *ColourPieceTable[int], c Cell) {
	t.entries[c.Colour()][c.Piece()]++
}
