package metrics

import (
	"time"

	"reversi/searcher"
)

// AgentConfig describes one AI participant in an experiment.
type AgentConfig struct {
	ID         int
	Difficulty searcher.Difficulty
}

// MoveMetric captures one AI move: how deep the timed search got, how many
// leaves it evaluated, and whether the mistake policy replaced the searched
// move. Node counts are advisory under parallel root scoring.
type MoveMetric struct {
	DepthReached   int
	NodesEvaluated int64
	Duration       time.Duration
	Mistake        bool
	Passed         bool
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing black
	Agent2 int // AgentConfig.ID, playing white
	GameMetric
}

type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player string
	MoveMetric
}
