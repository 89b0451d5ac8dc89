package searcher

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"reversi/game"
)

// softStopRatio is the share of the time budget after which no deeper
// iteration is started.
const softStopRatio = 0.9

// SearchResult is the outcome of one best-move search.
type SearchResult struct {
	BestMove       game.Move
	HasMove        bool
	Evaluation     int
	DepthReached   int
	NodesEvaluated int64
	Completed      bool
}

// FindBestMove scores every legal root move for player at the given depth and
// returns the first move attaining the maximum score (moves are enumerated in
// position order). Candidate subtrees are independent and read-only over the
// starting board, so they are scored concurrently by a small worker pool.
func FindBestMove(b game.Board, depth int, player game.PlayerColor) SearchResult {
	moves := b.ValidMovesList(player)
	if len(moves) == 0 {
		return SearchResult{}
	}

	var nodes atomic.Int64
	scores := make([]int, len(moves))

	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	workers := runtime.NumCPU()
	if workers > len(moves) {
		workers = len(moves)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				next := b
				next.MakeMove(moves[i].Position, player)
				// The root move is already on the board, so the next
				// ply belongs to the opponent.
				scores[i] = Minimax(next, depth-1, math.MinInt, math.MaxInt, false, player, &nodes)
			}
		}()
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return SearchResult{
		BestMove:       moves[best],
		HasMove:        true,
		Evaluation:     scores[best],
		DepthReached:   depth,
		NodesEvaluated: nodes.Load(),
		Completed:      true,
	}
}

// FindBestMoveWithTimeLimit runs iterative deepening from depth 1 up to
// maxDepth. A deeper iteration only starts while elapsed time is under 90% of
// the budget, and its result is only accepted if the iteration finished
// before the hard deadline; otherwise the previous depth's result stands.
// Each depth iteration runs to completion once started.
func FindBestMoveWithTimeLimit(b game.Board, timeLimit time.Duration, maxDepth int, player game.PlayerColor) SearchResult {
	start := time.Now()
	var best SearchResult

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Since(start) >= time.Duration(float64(timeLimit)*softStopRatio) {
			break
		}

		result := FindBestMove(b, depth, player)
		if time.Since(start) >= timeLimit {
			break
		}
		best = result
	}
	return best
}
