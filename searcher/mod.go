package searcher

import (
	"errors"
	"math"
)

// WinningValue is the magnitude of a won position: positive when White wins,
// negative when Black wins.
const WinningValue = math.MaxInt32 - 20

// Infinity bounds every score the search can produce.
const Infinity = math.MaxInt32

var (
	ErrGameOver = errors.New("game is over")
	ErrNoMoves  = errors.New("no legal moves")
)
