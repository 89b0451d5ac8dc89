package game

import "math/bits"

// PlayerColor identifies one of the two sides.
type PlayerColor uint8

const (
	Black PlayerColor = iota
	White
)

// Opposite returns the other side.
func (p PlayerColor) Opposite() PlayerColor {
	if p == Black {
		return White
	}
	return Black
}

func (p PlayerColor) String() string {
	if p == Black {
		return "black"
	}
	return "white"
}

// Move is a disc placement. Position indexes the board row-major: bit i is
// the cell at row i/8, column i%8.
type Move struct {
	Position uint8
}

// Board holds one occupancy bitmask per side. The two masks are always
// disjoint. Board is a value type: moves are applied to copies during search
// and only the engine mutates its own instance.
type Board struct {
	Black uint64
	White uint64
}

// NewBoard returns the standard starting position, four discs around the
// center with black on the anti-diagonal.
func NewBoard() Board {
	return Board{
		Black: 0x0000000810000000,
		White: 0x0000001008000000,
	}
}

// Piece returns the color occupying position, and whether it is occupied.
func (b Board) Piece(position uint8) (PlayerColor, bool) {
	mask := uint64(1) << position
	if b.Black&mask != 0 {
		return Black, true
	}
	if b.White&mask != 0 {
		return White, true
	}
	return Black, false
}

// IsEmpty reports whether position holds no disc.
func (b Board) IsEmpty(position uint8) bool {
	return (b.Black|b.White)&(uint64(1)<<position) == 0
}

// CountPieces returns the number of discs player has on the board.
func (b Board) CountPieces(player PlayerColor) int {
	if player == Black {
		return bits.OnesCount64(b.Black)
	}
	return bits.OnesCount64(b.White)
}

// EmptySquares returns the bitmask of unoccupied cells.
func (b Board) EmptySquares() uint64 {
	return ^(b.Black | b.White)
}

// IsGameOver reports whether neither side has a legal move.
func (b Board) IsGameOver() bool {
	return !b.HasValidMoves(Black) && !b.HasValidMoves(White)
}

// Winner returns the side with more discs. ok is false on a tie; a finished
// game is not required, the current counts decide.
func (b Board) Winner() (winner PlayerColor, ok bool) {
	black := b.CountPieces(Black)
	white := b.CountPieces(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}

// PositionToCoords converts a bit index to (row, col).
func PositionToCoords(position uint8) (row, col uint8) {
	return position / 8, position % 8
}

// CoordsToPosition converts (row, col) to a bit index.
func CoordsToPosition(row, col uint8) uint8 {
	return row*8 + col
}
