package agent

import (
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"
)

type machineAgent struct {
	searcher *searcher.Searcher
}

// NewMachineAgent returns an agent that plays the searcher's choice.
func NewMachineAgent(s *searcher.Searcher) Agent {
	return machineAgent{searcher: s}
}

func (a machineAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.ChooseMove(board)
}
