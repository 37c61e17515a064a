package engine

import (
	"fmt"
	"loa/agent"
	"loa/experiments/metrics"
	"loa/game"
	"loa/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two in-process agents against each other on one authoritative board.
type LocalEngine struct {
	Board    *game.Board
	White    agent.Agent
	Black    agent.Agent
	MaxTurns int
}

func NewLocalEngine(board *game.Board, white, black agent.Agent) *LocalEngine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	return &LocalEngine{
		Board:    board,
		White:    white,
		Black:    black,
		MaxTurns: meta.MAX_TURNS,
	}
}

func (e *LocalEngine) agentFor(side game.Piece) agent.Agent {
	if side == game.White {
		return e.White
	}
	return e.Black
}

// Run executes the game loop until the board reports the game over.
func (e *LocalEngine) Run() (Result, error) {
	result := Result{
		Game: metrics.GameMetric{
			StartingPlayer: e.Board.Turn().FullName(),
			StartTime:      time.Now(),
		},
	}

	log.Info().Msgf("%s is starting", e.Board.Turn())

	turnCount := 1
	for !e.Board.GameOver() && turnCount <= e.MaxTurns {
		side := e.Board.Turn()

		move, searchMetric, err := e.agentFor(side).FindMove(e.Board)
		if err != nil {
			e.complete(&result)
			return result, fmt.Errorf("%s failed to find a move: %w", side, err)
		}

		if !e.Board.IsLegalMove(move) {
			fallback := e.Board.LegalMoves()
			if len(fallback) == 0 {
				e.complete(&result)
				return result, fmt.Errorf("%s proposed illegal move %s with no legal moves left", side, move)
			}
			log.Warn().Msgf("%s proposed illegal move %s, playing %s instead", side, move, fallback[0])
			move = fallback[0]
		}

		if _, err := e.Board.MakeMove(move); err != nil {
			e.complete(&result)
			return result, err
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         turnCount,
			Player:       side.FullName(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s played %s", turnCount, side, move)

		turnCount++
	}

	e.complete(&result)
	if result.Finished {
		log.Info().Msgf("game over after %d moves, winner: %s", e.Board.MovesMade(), result.Game.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.MaxTurns)
	}
	return result, nil
}

func (e *LocalEngine) complete(result *Result) {
	winner, over := e.Board.Winner()
	result.Winner = winner
	result.Finished = over
	if over {
		result.Game.Winner = winner.FullName()
	}
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = e.Board.MovesMade()
}
