package searcher

import (
	"fmt"
	"loa/experiments/metrics"
	"loa/game"
	"loa/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher chooses moves by depth-limited minimax with alpha-beta pruning.
// White maximizes and Black minimizes. A Searcher is not safe for concurrent use.
type Searcher struct {
	depth    int
	pruning  bool
	evaluate game.Evaluate
	metrics  metrics.Collector
	found    game.Move
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithPruning toggles alpha-beta pruning. Without it the search is plain minimax.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) {
		s.pruning = enabled
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		pruning:  true,
		evaluate: Heuristic,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ChooseMove returns the best move for the side to move on board. The board
// is left untouched; the search runs on a private copy.
func (s *Searcher) ChooseMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	move, score, err := s.Search(board)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return move, s.metrics.Complete(score), nil
}

// Search returns the best move and its minimax value.
func (s *Searcher) Search(board *game.Board) (game.Move, int, error) {
	if board.GameOver() {
		return game.Move{}, 0, ErrGameOver
	}
	if len(board.LegalMoves()) == 0 {
		return game.Move{}, 0, fmt.Errorf("%w for %s", ErrNoMoves, board.Turn())
	}

	work := board.Copy()
	depth := s.depthFor(work)
	sense := 1
	if work.Turn() == game.Black {
		sense = -1
	}

	s.metrics.Start(depth, s.pruning)
	s.found = game.Move{}
	score := s.findMove(work, depth, true, sense, -Infinity, Infinity)

	log.Debug().Msgf("%s searched to depth %d: move %s, score %d", board.Turn(), depth, s.found, score)
	return s.found, score, nil
}

// depthFor stops the search at the move limit rather than past it.
func (s *Searcher) depthFor(board *game.Board) int {
	remaining := board.MoveLimit() - board.MovesMade()
	if remaining < s.depth {
		return max(remaining, 1)
	}
	return s.depth
}

// findMove returns the value of board searched to depth, recording the best
// move in s.found iff saveMove. With sense 1 the value is maximized, with -1
// it is minimized. Moves whose value ties the best so far keep the earlier move.
func (s *Searcher) findMove(board *game.Board, depth int, saveMove bool, sense int, alpha, beta int) int {
	s.metrics.AddNode()

	if winner, over := board.Winner(); over {
		s.metrics.AddLeaf()
		return terminalValue(winner, depth)
	}
	if depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(board)
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(board)
	}

	best := -sense * Infinity
	for i, m := range moves {
		undo, err := board.MakeMove(m)
		if err != nil {
			panic(err)
		}
		score := s.findMove(board, depth-1, false, -sense, alpha, beta)
		if err := undo.Retract(); err != nil {
			panic(err)
		}

		if sense*score > sense*best {
			best = score
			if saveMove {
				s.found = m
			}
		}
		if sense == 1 {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		if s.pruning && beta <= alpha {
			if i < len(moves)-1 {
				s.metrics.AddCutoff()
			}
			break
		}
	}
	return best
}
