package engine

import (
	"errors"
	"loa/agent"
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays fixed moves in order.
type scriptedAgent struct {
	moves []game.Move
	err   error
}

func (a *scriptedAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if a.err != nil {
		return game.Move{}, metrics.SearchMetric{}, a.err
	}
	m := a.moves[0]
	a.moves = a.moves[1:]
	return m, metrics.SearchMetric{}, nil
}

func script(t *testing.T, moves ...string) *scriptedAgent {
	t.Helper()
	a := &scriptedAgent{}
	for _, s := range moves {
		m, err := game.ParseMove(s)
		require.NoError(t, err)
		a.moves = append(a.moves, m)
	}
	return a
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("draw at the move limit", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.SetMoveLimit(2))
		e := NewLocalEngine(b, script(t, "a2-b1", "b1-a2"), script(t, "b1-h1", "c1-a3"))

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, result.Finished)
		require.Equal(t, game.Empty, result.Winner)
		require.Equal(t, "empty", result.Game.Winner)
		require.Equal(t, "black", result.Game.StartingPlayer)
		require.Equal(t, 4, result.Game.TotalMoves)
		require.Len(t, result.Moves, 4)
		require.Equal(t, "black", result.Moves[0].Player)
		require.Equal(t, "b1-h1", result.Moves[0].Move)
		require.Equal(t, "a2-b1", result.Moves[1].Move)
	})

	t.Run("illegal proposal falls back to first legal move", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.SetMoveLimit(1))
		first := b.LegalMoves()[0]
		e := NewLocalEngine(b, script(t, "a2-a3"), script(t, "b1-b2"))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, first.String(), result.Moves[0].Move)
		require.Equal(t, 2, result.Game.TotalMoves)
	})

	t.Run("agent error aborts", func(t *testing.T) {
		e := NewLocalEngine(game.NewBoard(), script(t), &scriptedAgent{err: agent.ErrQuit})

		result, err := e.Run()

		require.True(t, errors.Is(err, agent.ErrQuit))
		require.False(t, result.Finished)
		require.Equal(t, 0, result.Game.TotalMoves)
	})

	t.Run("turn cap", func(t *testing.T) {
		e := NewLocalEngine(game.NewBoard(), agent.NewRandomAgent(1), agent.NewRandomAgent(2))
		e.MaxTurns = 3

		result, err := e.Run()

		require.NoError(t, err)
		require.False(t, result.Finished)
		require.Equal(t, 3, result.Game.TotalMoves)
		require.Equal(t, "", result.Game.Winner)
	})

	t.Run("machine against random finishes", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.SetMoveLimit(15))
		machine := agent.NewMachineAgent(searcher.NewSearcher(searcher.WithDepth(1), searcher.WithMetrics()))
		e := NewLocalEngine(b, machine, agent.NewRandomAgent(7))

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, result.Finished)
		require.LessOrEqual(t, result.Game.TotalMoves, 30)
		for _, m := range result.Moves {
			if m.Player == "white" {
				require.Equal(t, 1, m.Depth, "Machine moves carry search metrics")
			}
		}
	})
}
