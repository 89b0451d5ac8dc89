package game

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestOpeningMoves(t *testing.T) {
	t.Run("black has exactly the four canonical openings", func(t *testing.T) {
		b := NewBoard()
		moves := b.ValidMovesList(Black)

		expected := []Move{
			{Position: CoordsToPosition(2, 3)},
			{Position: CoordsToPosition(3, 2)},
			{Position: CoordsToPosition(4, 5)},
			{Position: CoordsToPosition(5, 4)},
		}
		require.Equal(t, expected, moves, "Openings should come back in increasing position order")
	})

	t.Run("each opening flips exactly one disc", func(t *testing.T) {
		for _, move := range NewBoard().ValidMovesList(Black) {
			b := NewBoard()
			require.True(t, b.MakeMove(move.Position, Black))

			require.Equal(t, 4, b.CountPieces(Black), "Opening %d should leave 4 black discs", move.Position)
			require.Equal(t, 1, b.CountPieces(White), "Opening %d should leave 1 white disc", move.Position)
		}
	})
}

func TestMoveLegality(t *testing.T) {
	boards := sampleBoards(t, 12)

	t.Run("soundness: listed moves are empty and flip at least one disc", func(t *testing.T) {
		for _, b := range boards {
			for _, player := range []PlayerColor{Black, White} {
				for _, move := range b.ValidMovesList(player) {
					require.True(t, b.IsEmpty(move.Position))
					require.NotZero(t, b.flippedDiscs(move.Position, player),
						"Move %d for %s should flip something", move.Position, player)
				}
			}
		}
	})

	t.Run("completeness: unlisted empty cells flip nothing", func(t *testing.T) {
		for _, b := range boards {
			for _, player := range []PlayerColor{Black, White} {
				mask := b.ValidMoves(player)
				for position := uint8(0); position < 64; position++ {
					if !b.IsEmpty(position) || mask&(uint64(1)<<position) != 0 {
						continue
					}
					require.Zero(t, b.flippedDiscs(position, player),
						"Illegal move %d for %s must flip nothing", position, player)
				}
			}
		}
	})

	t.Run("out of range positions are invalid", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsValidMove(64, Black))
		require.False(t, b.IsValidMove(200, Black))
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("masks stay disjoint and counts add up", func(t *testing.T) {
		for _, b := range sampleBoards(t, 12) {
			for _, player := range []PlayerColor{Black, White} {
				for _, move := range b.ValidMovesList(player) {
					next := b
					flips := b.flippedDiscs(move.Position, player)
					require.True(t, next.MakeMove(move.Position, player))

					require.Zero(t, next.Black&next.White, "No cell may hold both colors")
					require.Equal(t,
						b.CountPieces(Black)+b.CountPieces(White)+1,
						next.CountPieces(Black)+next.CountPieces(White),
						"A move adds exactly one disc overall")
					require.Equal(t,
						b.CountPieces(player)+1+bits.OnesCount64(flips),
						next.CountPieces(player),
						"Mover gains the placed disc plus every flip")
				}
			}
		}
	})

	t.Run("illegal move is rejected without mutation", func(t *testing.T) {
		b := NewBoard()
		original := b

		require.False(t, b.MakeMove(0, Black), "Corner is not reachable from the start")
		require.Equal(t, original, b)
		require.False(t, b.MakeMove(0, Black), "Second rejection must be identical")
		require.Equal(t, original, b)
	})
}

func TestGameOver(t *testing.T) {
	t.Run("one stuck side does not end the game", func(t *testing.T) {
		// Black can capture the lone white disc; white has no reply.
		b := Board{Black: 1 << 0, White: 1 << 1}
		require.True(t, b.HasValidMoves(Black))
		require.False(t, b.HasValidMoves(White))
		require.False(t, b.IsGameOver())
	})

	t.Run("game over iff both sides are moveless", func(t *testing.T) {
		for _, b := range sampleBoards(t, 12) {
			expected := b.ValidMoves(Black) == 0 && b.ValidMoves(White) == 0
			require.Equal(t, expected, b.IsGameOver())
		}
	})
}

// sampleBoards returns the starting position plus boards reached by seeded
// random legal play, pass plies included.
func sampleBoards(t *testing.T, plies int) []Board {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	b := NewBoard()
	player := Black
	boards := []Board{b}

	for i := 0; i < plies; i++ {
		moves := b.ValidMovesList(player)
		if len(moves) == 0 {
			player = player.Opposite()
			moves = b.ValidMovesList(player)
			if len(moves) == 0 {
				break
			}
		}
		require.True(t, b.MakeMove(moves[rng.Intn(len(moves))].Position, player))
		player = player.Opposite()
		boards = append(boards, b)
	}
	return boards
}
