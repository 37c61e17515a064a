package game

// BOARD_SIZE is the number of rows and columns on the board.
const BOARD_SIZE = 8

// NUM_SQUARES is the number of cells on the board.
const NUM_SQUARES = BOARD_SIZE * BOARD_SIZE

type StateHash uint64

// Evaluates a position to a score that is positive when the position favors
// White and negative when it favors Black.
type Evaluate func(*Board) int
