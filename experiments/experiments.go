package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/searcher"
)

const NumGames = 10 // Per matchup

var tierConfigs = []metrics.AgentConfig{
	{ID: 1, Difficulty: searcher.Beginner},
	{ID: 2, Difficulty: searcher.Intermediate},
	{ID: 3, Difficulty: searcher.Advanced},
	{ID: 4, Difficulty: searcher.Expert},
}

// RunTierStrength plays every tier against the Expert baseline and records
// the outcomes, to confirm the tiers actually order by strength.
func RunTierStrength() error {
	baseline := tierConfigs[len(tierConfigs)-1]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range tierConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return runExperiment("tier_strength", tierConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%s and agent2=%s...",
			mi+1, len(matchUps), config1.Difficulty, config2.Difficulty)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			count++
			gameMetric, moveMetrics := runGame(config1, config2, count)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			moveRecords = append(moveRecords, moveMetrics...)

			log.Info().Msgf("game %d over, winner=%q", count, gameMetric.Winner)
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("finished %s experiment: %d games", name, len(gameRecords))
	return nil
}

// runGame plays agent1 (black) against agent2 (white) to completion.
func runGame(config1, config2 metrics.AgentConfig, gameID int) (metrics.GameMetric, []metrics.MoveRecord) {
	match := engine.NewMatch()
	agents := map[string]*searcher.AI{
		"black": searcher.NewAI(config1.Difficulty),
		"white": searcher.NewAI(config2.Difficulty),
	}

	startTime := time.Now()
	moveRecords := []metrics.MoveRecord{}
	step := 0
	for !match.GameOver() && step < engine.MaxMoves {
		player := match.Turn()
		moveStart := time.Now()
		aiMove, err := match.PlayAI(agents[player.String()])
		if err != nil {
			log.Error().Err(err).Msg("aborting game")
			break
		}

		step++
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:   gameID,
			Step:   step,
			Player: player.String(),
			MoveMetric: metrics.MoveMetric{
				DepthReached:   aiMove.Result.DepthReached,
				NodesEvaluated: aiMove.Result.NodesEvaluated,
				Duration:       time.Since(moveStart),
				Mistake:        aiMove.Mistake,
				Passed:         !aiMove.HasMove,
			},
		})
	}

	winner := ""
	if color, ok := match.Winner(); ok {
		winner = color.String()
	}
	endTime := time.Now()

	return metrics.GameMetric{
		StartingPlayer: "black",
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step,
	}, moveRecords
}
