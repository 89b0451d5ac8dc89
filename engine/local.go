package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/searcher"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Match is the local engine: one board, one side to move, explicit turn
// threading. Human moves come in through Play, AI moves through PlayAI or
// StartAI. Forced passes are handled inside the turn advance so the side to
// move always has a legal move while the game is live.
type Match struct {
	mu       sync.Mutex
	board    game.Board
	turn     game.PlayerColor
	gameOver bool
	updates  chan Update
}

func NewMatch() *Match {
	return &Match{
		board:   game.NewBoard(),
		turn:    game.Black,
		updates: make(chan Update, 64),
	}
}

func (m *Match) Board() game.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board
}

func (m *Match) Turn() game.PlayerColor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.turn
}

func (m *Match) GameOver() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gameOver
}

func (m *Match) Winner() (game.PlayerColor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.Winner()
}

// Updates exposes the stream of applied moves and passes. Slow consumers do
// not stall the game: publishes are dropped when the buffer is full.
func (m *Match) Updates() <-chan Update {
	return m.updates
}

// Reset starts a fresh game on the standard position, black to move.
func (m *Match) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board = game.NewBoard()
	m.turn = game.Black
	m.gameOver = false
}

// Play applies a move for the side to move. An illegal position leaves the
// board untouched and returns ErrIllegalMove.
func (m *Match) Play(position uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gameOver {
		return ErrGameOver
	}
	player := m.turn
	if !m.board.MakeMove(position, player) {
		return fmt.Errorf("%w: %s at position %d", ErrIllegalMove, player, position)
	}

	move := game.Move{Position: position}
	m.advanceTurn(&move, player)
	return nil
}

// PlayAI computes and applies a move for the side to move. The search runs
// off the lock over a snapshot of the board; the board is only touched again
// once the search is done. A moveless side passes the turn.
func (m *Match) PlayAI(ai *searcher.AI) (searcher.AIMove, error) {
	m.mu.Lock()
	if m.gameOver {
		m.mu.Unlock()
		return searcher.AIMove{}, ErrGameOver
	}
	board := m.board
	player := m.turn
	m.mu.Unlock()

	aiMove := ai.FindMove(board, player)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gameOver {
		return aiMove, ErrGameOver
	}
	if m.turn != player {
		return aiMove, fmt.Errorf("turn changed during search: expected %s, now %s", player, m.turn)
	}

	if !aiMove.HasMove {
		m.advanceTurn(nil, player)
		return aiMove, nil
	}
	if !m.board.MakeMove(aiMove.Move.Position, player) {
		return aiMove, fmt.Errorf("%w: search returned position %d for %s", ErrIllegalMove, aiMove.Move.Position, player)
	}

	move := aiMove.Move
	m.advanceTurn(&move, player)
	return aiMove, nil
}

// StartAI runs PlayAI on a background goroutine so the caller's loop is not
// blocked while the engine thinks. Completion is observable on the returned
// channel and through Updates.
func (m *Match) StartAI(ai *searcher.AI) <-chan error {
	done := make(chan error, 1)
	go func() {
		_, err := m.PlayAI(ai)
		if err != nil {
			log.Error().Err(err).Msg("ai move failed")
		}
		done <- err
	}()
	return done
}

// advanceTurn hands the turn to the opponent, skipping them when they are
// moveless, and marks the game over when neither side can play. Callers hold
// the lock. move is nil for a pass by player.
func (m *Match) advanceTurn(move *game.Move, player game.PlayerColor) {
	next := player.Opposite()
	switch {
	case m.board.IsGameOver():
		m.gameOver = true
	case !m.board.HasValidMoves(next):
		log.Info().Stringer("player", next).Msg("no legal moves, passing")
		next = player
	}
	m.turn = next

	update := Update{
		Move:     move,
		Player:   player,
		Board:    m.board,
		Turn:     m.turn,
		GameOver: m.gameOver,
	}
	select {
	case m.updates <- update:
	default:
	}
}
