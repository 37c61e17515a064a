package engine

import (
	"loa/experiments/metrics"
	"loa/game"
)

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (Result, error)
}

type Result struct {
	Winner   game.Piece // Empty for a draw or an unfinished game
	Finished bool       // False if the turn cap stopped the game
	Game     metrics.GameMetric
	Moves    []metrics.MoveMetric
}
