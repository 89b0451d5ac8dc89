package engine

import (
	"reversi/game"
	"reversi/searcher"
)

// MaxMoves bounds a single game, passes included. A reversi game fills at
// most 60 empty squares.
const MaxMoves = 200

// Update is published after every applied move or forced pass.
type Update struct {
	Move     *game.Move // nil for a pass
	Player   game.PlayerColor
	Board    game.Board
	Turn     game.PlayerColor
	GameOver bool
}

// Engine owns a single running game: the board and the side to move.
type Engine interface {
	Board() game.Board
	Turn() game.PlayerColor
	GameOver() bool
	Winner() (game.PlayerColor, bool)
	Play(position uint8) error
	PlayAI(ai *searcher.AI) (searcher.AIMove, error)
	Updates() <-chan Update
}
