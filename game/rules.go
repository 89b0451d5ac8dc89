package game

// The eight ray directions as (row, col) deltas.
var directions = [8][2]int8{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (b Board) masks(player PlayerColor) (own, opp uint64) {
	if player == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// ValidMoves returns the bitmask of legal placements for player. A cell is
// legal iff it is empty and some ray from it crosses one or more contiguous
// opponent discs before reaching one of player's own discs.
func (b Board) ValidMoves(player PlayerColor) uint64 {
	own, opp := b.masks(player)
	empty := b.EmptySquares()

	var moves uint64
	for _, dir := range directions {
		moves |= movesInDirection(own, opp, empty, dir[0], dir[1])
	}
	return moves
}

func movesInDirection(own, opp, empty uint64, dx, dy int8) uint64 {
	var moves uint64

	for pos := 0; pos < 64; pos++ {
		if empty&(uint64(1)<<pos) == 0 {
			continue
		}

		r := int8(pos/8) + dx
		c := int8(pos%8) + dy
		foundOpponent := false
		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			checkMask := uint64(1) << uint8(r*8+c)
			if opp&checkMask != 0 {
				foundOpponent = true
			} else if own&checkMask != 0 && foundOpponent {
				moves |= uint64(1) << pos
				break
			} else {
				break
			}
			r += dx
			c += dy
		}
	}
	return moves
}

// ValidMovesList returns player's legal moves in increasing position order.
func (b Board) ValidMovesList(player PlayerColor) []Move {
	mask := b.ValidMoves(player)
	var moves []Move
	for position := uint8(0); position < 64; position++ {
		if mask&(uint64(1)<<position) != 0 {
			moves = append(moves, Move{Position: position})
		}
	}
	return moves
}

// IsValidMove reports whether player may place a disc at position.
func (b Board) IsValidMove(position uint8, player PlayerColor) bool {
	if position >= 64 || !b.IsEmpty(position) {
		return false
	}
	return b.ValidMoves(player)&(uint64(1)<<position) != 0
}

// HasValidMoves reports whether player has at least one legal move.
func (b Board) HasValidMoves(player PlayerColor) bool {
	return b.ValidMoves(player) != 0
}

// MakeMove places a disc for player at position and flips every outflanked
// opponent disc. It returns false and leaves the board untouched when the
// move is illegal; a legal move is applied atomically.
func (b *Board) MakeMove(position uint8, player PlayerColor) bool {
	if !b.IsValidMove(position, player) {
		return false
	}

	mask := uint64(1) << position
	flipped := b.flippedDiscs(position, player)

	if player == Black {
		b.Black |= mask | flipped
		b.White &^= flipped
	} else {
		b.White |= mask | flipped
		b.Black &^= flipped
	}
	return true
}

// flippedDiscs returns the union over all eight rays of the maximal
// contiguous run of opponent discs adjacent to position that is capped by one
// of player's own discs.
func (b Board) flippedDiscs(position uint8, player PlayerColor) uint64 {
	own, opp := b.masks(player)
	row := int8(position / 8)
	col := int8(position % 8)

	var flipped uint64
	for _, dir := range directions {
		r := row + dir[0]
		c := col + dir[1]
		var candidates uint64

		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			checkMask := uint64(1) << uint8(r*8+c)
			if opp&checkMask != 0 {
				candidates |= checkMask
			} else if own&checkMask != 0 {
				flipped |= candidates
				break
			} else {
				break
			}
			r += dir[0]
			c += dir[1]
		}
	}
	return flipped
}
