package game

import (
	"fmt"
	"strings"
)

// String dumps the board with the top row first, followed by the side to move.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for row := BOARD_SIZE - 1; row >= 0; row-- {
		sb.WriteString("    ")
		for col := 0; col < BOARD_SIZE; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(b.cells[Sq(col, row)].Abbrev())
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Next move: %s\n===", b.turn.FullName())
	return sb.String()
}

// ParseBoard reads the format produced by String.
func ParseBoard(s string) (*Board, error) {
	var layout [BOARD_SIZE][BOARD_SIZE]Piece
	turn := Empty
	row := BOARD_SIZE - 1

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || line == "===":
			continue
		case strings.HasPrefix(line, "Next move:"):
			p, err := ParsePiece(strings.TrimSpace(strings.TrimPrefix(line, "Next move:")))
			if err != nil {
				return nil, fmt.Errorf("failed to parse side to move: %w", err)
			}
			turn = p
			continue
		}

		if row < 0 {
			return nil, fmt.Errorf("too many rows in board")
		}
		fields := strings.Fields(line)
		if len(fields) != BOARD_SIZE {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row+1, len(fields), BOARD_SIZE)
		}
		for col, f := range fields {
			p, err := ParsePiece(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row+1, err)
			}
			layout[row][col] = p
		}
		row--
	}

	if row >= 0 {
		return nil, fmt.Errorf("board has %d rows, want %d", BOARD_SIZE-row-1, BOARD_SIZE)
	}
	if turn != White && turn != Black {
		return nil, fmt.Errorf("missing side to move")
	}
	return NewBoardFrom(layout, turn), nil
}
