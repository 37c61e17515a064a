package game

import "fmt"

// Piece is the content of a board cell.
type Piece int

const (
	Empty Piece = iota
	White
	Black
)

// Opposite returns the other side. Empty maps to itself.
func Opposite(p Piece) Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (p Piece) FullName() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

func (p Piece) Abbrev() string {
	switch p {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

func (p Piece) String() string {
	return p.FullName()
}

// ParsePiece accepts either an abbreviation or a full name.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	case "-", "empty":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown piece %q", s)
}
