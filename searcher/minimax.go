package searcher

import (
	"math"
	"sync/atomic"

	"reversi/game"
)

// Minimax scores the position depth plies ahead with alpha-beta pruning.
// Leaves are always evaluated from player's perspective (the root-optimizing
// side), never from the side to move, so every leaf score is comparable on
// one scale. A moveless side passes: the search recurses one ply deeper with
// the maximizing flag flipped and no move consumed.
func Minimax(b game.Board, depth, alpha, beta int, maximizing bool, player game.PlayerColor, nodes *atomic.Int64) int {
	if depth == 0 || b.IsGameOver() {
		if nodes != nil {
			nodes.Add(1)
		}
		return game.Evaluate(b, player)
	}

	current := player
	if !maximizing {
		current = player.Opposite()
	}

	moves := b.ValidMovesList(current)
	if len(moves) == 0 {
		return Minimax(b, depth-1, alpha, beta, !maximizing, player, nodes)
	}

	if maximizing {
		maxEval := math.MinInt
		for _, move := range moves {
			next := b
			next.MakeMove(move.Position, current)

			eval := Minimax(next, depth-1, alpha, beta, false, player, nodes)
			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, move := range moves {
		next := b
		next.MakeMove(move.Position, current)

		eval := Minimax(next, depth-1, alpha, beta, true, player, nodes)
		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break
		}
	}
	return minEval
}
