package game

import (
	"fmt"
	"loa/utils"
)

// Square identifies a cell by its index col + 8*row.
type Square int

// NoLine is the distance between two squares that do not share a rank, file or diagonal.
const NoLine = -1

// Direction is one of the 8 compass directions, clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NoDirection Direction = -1
)

var directionDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var columnNames = []byte("abcdefgh")
var rowNames = []byte("12345678")

// AllSquares lists every square in index order.
var AllSquares = func() []Square {
	squares := make([]Square, NUM_SQUARES)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}()

var adjacency = func() [NUM_SQUARES][]Square {
	var table [NUM_SQUARES][]Square
	for _, s := range AllSquares {
		for dir := North; dir <= NorthWest; dir++ {
			if n, ok := s.MoveDest(dir, 1); ok {
				table[s] = append(table[s], n)
			}
		}
	}
	return table
}()

// Sq returns the square at (col, row). Both must lie in [0, 8).
func Sq(col, row int) Square {
	if !inBounds(col, row) {
		panic(fmt.Sprintf("square out of bounds: col=%d row=%d", col, row))
	}
	return Square(col + BOARD_SIZE*row)
}

func inBounds(col, row int) bool {
	return col >= 0 && col < BOARD_SIZE && row >= 0 && row < BOARD_SIZE
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NUM_SQUARES
}

func (s Square) Col() int { return int(s) % BOARD_SIZE }
func (s Square) Row() int { return int(s) / BOARD_SIZE }

func (s Square) String() string {
	return string([]byte{columnNames[s.Col()], rowNames[s.Row()]})
}

// ParseSquare parses algebraic notation such as "c3".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	col := utils.FindIndex(columnNames, s[0])
	row := utils.FindIndex(rowNames, s[1])
	if col < 0 || row < 0 {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return Sq(col, row), nil
}

// Distance returns the number of steps from a to b along a shared line, or NoLine.
func Distance(a, b Square) int {
	dc := utils.Abs(b.Col() - a.Col())
	dr := utils.Abs(b.Row() - a.Row())
	switch {
	case dc == 0:
		return dr
	case dr == 0:
		return dc
	case dc == dr:
		return dc
	}
	return NoLine
}

// OnLine reports whether a and b are distinct and share a rank, file or diagonal.
func OnLine(a, b Square) bool {
	return a != b && Distance(a, b) != NoLine
}

// DirectionOf returns the direction of travel from a to b, or NoDirection when
// the squares are equal or not on a line.
func DirectionOf(a, b Square) Direction {
	if !OnLine(a, b) {
		return NoDirection
	}
	dc := sign(b.Col() - a.Col())
	dr := sign(b.Row() - a.Row())
	for dir, delta := range directionDeltas {
		if delta[0] == dc && delta[1] == dr {
			return Direction(dir)
		}
	}
	return NoDirection
}

// Reverse returns the opposite compass direction.
func (d Direction) Reverse() Direction {
	return (d + 4) % 8
}

// MoveDest returns the square steps away from s in direction dir, and false
// if that square is off the board.
func (s Square) MoveDest(dir Direction, steps int) (Square, bool) {
	if dir < North || dir > NorthWest {
		return 0, false
	}
	col := s.Col() + directionDeltas[dir][0]*steps
	row := s.Row() + directionDeltas[dir][1]*steps
	if !inBounds(col, row) {
		return 0, false
	}
	return Sq(col, row), true
}

// Adjacent returns the up to 8 squares touching s. The slice is shared and must not be modified.
func (s Square) Adjacent() []Square {
	return adjacency[s]
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
