package agent

import (
	"errors"
	"loa/experiments/metrics"
	"loa/game"
)

var ErrQuit = errors.New("player quit")

type Agent interface {
	// FindMove returns a legal move for the side to move and performance
	// metrics (if collected) from the process of finding it
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
