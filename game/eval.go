package game

import "math/bits"

// Per-cell static weights. Corners dominate, the cells next to a corner are
// penalized because they hand the corner to the opponent, edges are mildly
// positive and the interior slightly negative.
var positionWeights = [64]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -2, 10,
	5, -2, -1, -1, -1, -1, -2, 5,
	5, -2, -1, -1, -1, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

var corners = [4]uint8{0, 7, 56, 63}

// EvaluationWeights are the multipliers applied to the five sub-scores.
// They depend on the game stage, keyed by total discs on the board.
type EvaluationWeights struct {
	Corner     float64
	Stability  float64
	Mobility   float64
	Positional float64
	Parity     float64
}

// WeightsForStage returns the multipliers for the stage implied by the total
// disc count: opening favors mobility and position, the endgame favors
// corners, stability and parity.
func WeightsForStage(discCount int) EvaluationWeights {
	switch {
	case discCount <= 20:
		return EvaluationWeights{Corner: 0.8, Stability: 0.6, Mobility: 1.0, Positional: 0.8, Parity: 0.2}
	case discCount <= 45:
		return EvaluationWeights{Corner: 1.0, Stability: 0.8, Mobility: 0.6, Positional: 0.6, Parity: 0.4}
	default:
		return EvaluationWeights{Corner: 1.0, Stability: 1.0, Mobility: 0.2, Positional: 0.4, Parity: 0.8}
	}
}

// Evaluate scores the position from player's perspective; positive favors
// player. Five weighted sub-scores: corner ownership, border stability,
// mobility difference, the static position table and empty-square parity.
func Evaluate(b Board, player PlayerColor) int {
	discCount := b.CountPieces(Black) + b.CountPieces(White)
	weights := WeightsForStage(discCount)

	score := float64(evaluateCorners(b, player))*weights.Corner +
		float64(evaluateStability(b, player))*weights.Stability +
		float64(evaluateMobility(b, player))*weights.Mobility +
		float64(evaluatePositional(b, player))*weights.Positional +
		float64(evaluateParity(b))*weights.Parity
	return int(score)
}

// evaluateCorners scores corner ownership at ±100 per corner.
func evaluateCorners(b Board, player PlayerColor) int {
	score := 0
	for _, corner := range corners {
		color, occupied := b.Piece(corner)
		if !occupied {
			continue
		}
		if color == player {
			score += 100
		} else {
			score -= 100
		}
	}
	return score
}

// evaluateStability counts player's border discs at 50 points each. Border
// occupancy is a proxy for flip-immunity, not a corner-anchored chain trace;
// the difficulty tiers were tuned against exactly this heuristic.
func evaluateStability(b Board, player PlayerColor) int {
	own, _ := b.masks(player)

	stable := 0
	for position := uint8(0); position < 64; position++ {
		if own&(uint64(1)<<position) != 0 && isStablePiece(position) {
			stable++
		}
	}
	return stable * 50
}

func isStablePiece(position uint8) bool {
	row := position / 8
	col := position % 8
	return row == 0 || row == 7 || col == 0 || col == 7
}

// evaluateMobility scores the legal-move count difference at 30 per move.
func evaluateMobility(b Board, player PlayerColor) int {
	playerMoves := bits.OnesCount64(b.ValidMoves(player))
	opponentMoves := bits.OnesCount64(b.ValidMoves(player.Opposite()))
	return (playerMoves - opponentMoves) * 30
}

// evaluatePositional sums the static weight table, adding player-owned cells
// and subtracting opponent-owned ones.
func evaluatePositional(b Board, player PlayerColor) int {
	score := 0
	for position := uint8(0); position < 64; position++ {
		color, occupied := b.Piece(position)
		if !occupied {
			continue
		}
		if color == player {
			score += positionWeights[position]
		} else {
			score -= positionWeights[position]
		}
	}
	return score
}

// evaluateParity rewards an odd number of empty squares. The signal is
// absolute rather than relative to the asking player; it is a tempo
// heuristic for who gets the last placements, kept as designed.
func evaluateParity(b Board) int {
	if bits.OnesCount64(b.EmptySquares())%2 == 1 {
		return 10
	}
	return -10
}
