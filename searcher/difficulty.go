package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"reversi/game"
)

// Difficulty selects one of the four fixed AI tiers.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a tier name to its Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	switch name {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", name)
	}
}

// SearchParams are the search settings derived from a tier. UseOpeningBook is
// advisory and not consulted by the search yet.
type SearchParams struct {
	MaxDepth           int
	TimeLimit          time.Duration
	MistakeProbability float64
	UseOpeningBook     bool
}

// The tier table is static data: deeper search and tighter play as the tier
// rises, with the deliberate-error rate falling to zero at Expert.
var tierParams = [...]SearchParams{
	Beginner:     {MaxDepth: 2, TimeLimit: 100 * time.Millisecond, MistakeProbability: 0.3},
	Intermediate: {MaxDepth: 4, TimeLimit: 500 * time.Millisecond, MistakeProbability: 0.15},
	Advanced:     {MaxDepth: 6, TimeLimit: 2 * time.Second, MistakeProbability: 0.05, UseOpeningBook: true},
	Expert:       {MaxDepth: 12, TimeLimit: 5 * time.Second, MistakeProbability: 0, UseOpeningBook: true},
}

// SearchParams returns the tier's search settings.
func (d Difficulty) SearchParams() SearchParams {
	return tierParams[d]
}

// AIMove is the outcome of one AI turn: the chosen move (absent when the
// side has no legal move at all), the underlying search result, and whether
// the deliberate-mistake policy replaced the searched move.
type AIMove struct {
	Move    game.Move
	HasMove bool
	Mistake bool
	Result  SearchResult
}

// AI picks moves for one side at a fixed difficulty tier.
type AI struct {
	difficulty Difficulty
	params     SearchParams
	rng        *rand.Rand
}

type Option func(*AI)

// WithRand replaces the mistake-policy RNG, for reproducible play.
func WithRand(rng *rand.Rand) Option {
	return func(a *AI) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithSearchParams overrides the tier's search settings.
func WithSearchParams(params SearchParams) Option {
	return func(a *AI) {
		a.params = params
	}
}

func NewAI(difficulty Difficulty, options ...Option) *AI {
	a := &AI{
		difficulty: difficulty,
		params:     difficulty.SearchParams(),
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AI) Difficulty() Difficulty {
	return a.difficulty
}

// FindMove runs the timed search for player and then, with the tier's
// mistake probability, discards the searched move for a uniformly random
// legal one. The substitution is a full replacement: the result is a legal,
// merely suboptimal move.
func (a *AI) FindMove(b game.Board, player game.PlayerColor) AIMove {
	result := FindBestMoveWithTimeLimit(b, a.params.TimeLimit, a.params.MaxDepth, player)

	if a.params.MistakeProbability > 0 && a.rng.Float64() < a.params.MistakeProbability {
		move, ok := a.randomMove(b, player)
		return AIMove{Move: move, HasMove: ok, Mistake: true, Result: result}
	}

	if !result.HasMove {
		moves := b.ValidMovesList(player)
		if len(moves) == 0 {
			return AIMove{Result: result}
		}
		// Legal moves exist but not even depth 1 finished inside the
		// budget. That is a time-budget misconfiguration, not a pass.
		log.Warn().
			Stringer("difficulty", a.difficulty).
			Dur("time_limit", a.params.TimeLimit).
			Msg("search budget exhausted before depth 1, falling back to first legal move")
		return AIMove{Move: moves[0], HasMove: true, Result: result}
	}

	return AIMove{Move: result.BestMove, HasMove: true, Result: result}
}

func (a *AI) randomMove(b game.Board, player game.PlayerColor) (game.Move, bool) {
	moves := b.ValidMovesList(player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
