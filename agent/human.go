package agent

import (
	"bufio"
	"fmt"
	"io"
	"loa/experiments/metrics"
	"loa/game"
	"strings"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that reads moves such as "b1-d3" from in,
// one per line, and writes prompts to out. Malformed or illegal input is
// reported and asked for again.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprintln(a.out, board)
	for {
		fmt.Fprintf(a.out, "%s> ", board.Turn().FullName())
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, ErrQuit
		}

		line := strings.TrimSpace(a.in.Text())
		switch line {
		case "":
			continue
		case "quit":
			return game.Move{}, metrics.SearchMetric{}, ErrQuit
		case "moves":
			moves := board.LegalMoves()
			names := make([]string, len(moves))
			for i, m := range moves {
				names[i] = m.String()
			}
			fmt.Fprintln(a.out, strings.Join(names, " "))
			continue
		}

		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if !board.IsLegalMove(move) {
			fmt.Fprintf(a.out, "illegal move: %s\n", move)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
