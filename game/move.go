package game

import (
	"fmt"
	"strings"
)

// Move represents a move of one piece along a line.
type Move struct {
	From    Square
	To      Square
	Capture bool // Set when the destination held an opposing piece
}

func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// CaptureMove returns the same move marked as a capture.
func (m Move) CaptureMove() Move {
	m.Capture = true
	return m
}

// SameSquares compares origin and destination only.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// ParseMove parses notation such as "a1-c3".
func ParseMove(s string) (Move, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return Move{}, fmt.Errorf("invalid move %q: expected <from>-<to>", s)
	}
	fromSq, err := ParseSquare(from)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return NewMove(fromSq, toSq), nil
}
