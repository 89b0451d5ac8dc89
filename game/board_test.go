package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("standard starting position", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, 2, b.CountPieces(Black), "Should start with 2 black discs")
		require.Equal(t, 2, b.CountPieces(White), "Should start with 2 white discs")

		black := []uint8{CoordsToPosition(3, 4), CoordsToPosition(4, 3)}
		white := []uint8{CoordsToPosition(3, 3), CoordsToPosition(4, 4)}
		for _, position := range black {
			color, occupied := b.Piece(position)
			require.True(t, occupied)
			require.Equal(t, Black, color, "Position %d should be black", position)
		}
		for _, position := range white {
			color, occupied := b.Piece(position)
			require.True(t, occupied)
			require.Equal(t, White, color, "Position %d should be white", position)
		}
	})

	t.Run("all other cells empty", func(t *testing.T) {
		b := NewBoard()

		empty := 0
		for position := uint8(0); position < 64; position++ {
			if b.IsEmpty(position) {
				empty++
			}
		}
		require.Equal(t, 60, empty, "Should have 60 empty cells")
	})
}

func TestOpposite(t *testing.T) {
	require.Equal(t, White, Black.Opposite())
	require.Equal(t, Black, White.Opposite())
}

func TestCoordsConversion(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for position := uint8(0); position < 64; position++ {
			row, col := PositionToCoords(position)
			require.Equal(t, position, CoordsToPosition(row, col))
		}
	})

	t.Run("known positions", func(t *testing.T) {
		row, col := PositionToCoords(19)
		require.Equal(t, uint8(2), row)
		require.Equal(t, uint8(3), col)
		require.Equal(t, uint8(63), CoordsToPosition(7, 7))
	})
}

func TestEmptySquares(t *testing.T) {
	b := NewBoard()
	occupied := b.Black | b.White

	require.Zero(t, b.EmptySquares()&occupied, "Empty mask must not overlap occupied cells")
	require.Equal(t, ^uint64(0), b.EmptySquares()|occupied)
}

func TestWinner(t *testing.T) {
	t.Run("no winner while the game is live", func(t *testing.T) {
		b := NewBoard()
		_, ok := b.Winner()
		require.False(t, ok, "Starting position has no winner")
	})

	t.Run("side with more discs wins", func(t *testing.T) {
		// Lone black disc: neither side can move, black leads 1-0.
		b := Board{Black: 1 << 0}
		require.True(t, b.IsGameOver())

		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("equal counts are a draw", func(t *testing.T) {
		// Opposite corners, no legal move for either side.
		b := Board{Black: 1 << 0, White: 1 << 63}
		require.True(t, b.IsGameOver())

		_, ok := b.Winner()
		require.False(t, ok, "Equal disc counts should report no winner")
	})
}
