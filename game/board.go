package game

import (
	"fmt"
	"loa/meta"
)

// Board represents the state of a game of Lines of Action at any point. It is
// mutated in place by MakeMove and Retract; use Copy to obtain an independent board.
type Board struct {
	cells     [NUM_SQUARES]Piece // Cell contents indexed by Square
	turn      Piece              // The side to move next
	moveLimit int                // Total moves of both sides at which an undecided game is drawn
	history   []Move             // Unretracted moves in order, with capture flags
	revision  uint64             // Bumped by every mutation, keys the region cache
	regions   regionCache
}

// Undo retracts the move that produced it. Tokens must be consumed in
// reverse order of creation.
type Undo struct {
	board *Board
	ply   int
	move  Move
}

// initialPieces is the standard opening position, bottom row first.
var initialPieces = [BOARD_SIZE][BOARD_SIZE]Piece{
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
}

// NewBoard returns a board in the standard opening position with Black to move.
func NewBoard() *Board {
	return NewBoardFrom(initialPieces, Black)
}

// NewBoardFrom returns a board where Get(Sq(col, row)) == layout[row][col] and
// turn is to move. Note the bottom row of the board is layout[0].
func NewBoardFrom(layout [BOARD_SIZE][BOARD_SIZE]Piece, turn Piece) *Board {
	if turn != White && turn != Black {
		panic(fmt.Sprintf("invalid side to move: %s", turn))
	}
	b := &Board{
		turn:      turn,
		moveLimit: 2 * meta.DEFAULT_MOVE_LIMIT,
	}
	for row := range layout {
		for col, p := range layout[row] {
			b.cells[Sq(col, row)] = p
		}
	}
	return b
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	historyCopy := make([]Move, len(b.history))
	copy(historyCopy, b.history)

	return &Board{
		cells:     b.cells,
		turn:      b.turn,
		moveLimit: b.moveLimit,
		history:   historyCopy,
		revision:  b.revision,
		regions:   b.regions.copy(),
	}
}

func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

func (b *Board) Turn() Piece {
	return b.turn
}

// MovesMade returns the number of moves made and not retracted.
func (b *Board) MovesMade() int {
	return len(b.history)
}

// MoveLimit returns the total number of moves (both sides) at which the game is drawn.
func (b *Board) MoveLimit() int {
	return b.moveLimit
}

// SetMoveLimit sets the limit to perSide moves by each side. It fails if the
// moves already made would reach the new limit.
func (b *Board) SetMoveLimit(perSide int) error {
	if 2*perSide <= b.MovesMade() {
		return fmt.Errorf("%w: move limit %d per side with %d moves made", ErrInvalidConfiguration, perSide, b.MovesMade())
	}
	b.moveLimit = 2 * perSide
	return nil
}

// History returns a copy of the unretracted moves.
func (b *Board) History() []Move {
	h := make([]Move, len(b.history))
	copy(h, b.history)
	return h
}

// LastMover returns the side that made the most recent move, or Empty before any move.
func (b *Board) LastMover() Piece {
	if len(b.history) == 0 {
		return Empty
	}
	return Opposite(b.turn)
}

// IsLegal reports whether moving the piece on from to to is legal for the side on move.
func (b *Board) IsLegal(from, to Square) bool {
	if !from.Valid() || !to.Valid() || !OnLine(from, to) {
		return false
	}
	if b.cells[from] != b.turn {
		return false
	}
	if b.blocked(from, to) {
		return false
	}
	return Distance(from, to) == b.lineCount(from, DirectionOf(from, to))
}

// IsLegalMove is IsLegal on the move's squares; the capture flag is ignored.
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To)
}

// LegalMoves returns all legal moves for the side on move, ordered by origin
// then destination square index.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, from := range AllSquares {
		if b.cells[from] != b.turn {
			continue
		}
		for _, to := range AllSquares {
			if b.IsLegal(from, to) {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

// lineCount counts the pieces on the whole line through from along dir,
// including the piece on from.
func (b *Board) lineCount(from Square, dir Direction) int {
	count := 1
	for _, d := range [2]Direction{dir, dir.Reverse()} {
		for dist := 1; ; dist++ {
			sq, ok := from.MoveDest(d, dist)
			if !ok {
				break
			}
			if b.cells[sq] != Empty {
				count++
			}
		}
	}
	return count
}

// blocked reports whether a friendly piece holds the destination or an
// opposing piece lies strictly between from and to.
func (b *Board) blocked(from, to Square) bool {
	mover := b.cells[from]
	if b.cells[to] == mover {
		return true
	}
	dir := DirectionOf(from, to)
	for dist := 1; dist < Distance(from, to); dist++ {
		sq, _ := from.MoveDest(dir, dist)
		if p := b.cells[sq]; p != Empty && p != mover {
			return true
		}
	}
	return false
}

// MakeMove plays m for the side on move and returns a token that retracts it.
func (b *Board) MakeMove(m Move) (Undo, error) {
	if !b.IsLegalMove(m) {
		return Undo{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.turn)
	}

	mover := b.turn
	applied := NewMove(m.From, m.To)
	if b.cells[m.To] != Empty {
		applied = applied.CaptureMove()
	}
	b.cells[m.To] = mover
	b.cells[m.From] = Empty
	b.history = append(b.history, applied)
	b.turn = Opposite(mover)
	b.revision++

	return Undo{board: b, ply: len(b.history), move: applied}, nil
}

// Retract unmakes the most recent move.
func (b *Board) Retract() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	last := len(b.history) - 1
	m := b.history[last]
	b.history = b.history[:last]

	b.turn = Opposite(b.turn)
	mover := b.turn
	b.cells[m.From] = mover
	if m.Capture {
		b.cells[m.To] = Opposite(mover)
	} else {
		b.cells[m.To] = Empty
	}
	b.revision++
	return nil
}

// Retract unmakes the move the token was issued for, provided it is still the
// most recent move on its board.
func (u Undo) Retract() error {
	if u.board == nil {
		return fmt.Errorf("%w: zero undo token", ErrUndoOrder)
	}
	h := u.board.history
	if len(h) != u.ply || h[len(h)-1] != u.move {
		return fmt.Errorf("%w: %s at ply %d", ErrUndoOrder, u.move, u.ply)
	}
	return u.board.Retract()
}

// Move returns the move as applied, including its capture flag.
func (u Undo) Move() Move {
	return u.move
}

// Winner returns the winning side and true once the game is over, with Empty
// signalling a draw. Contiguity is judged relative to the side that just
// moved: its own win takes precedence over the opponent's.
func (b *Board) Winner() (Piece, bool) {
	mover := b.LastMover()
	if mover == Empty {
		return Empty, false
	}
	if b.PiecesContiguous(mover) {
		return mover, true
	}
	if b.PiecesContiguous(Opposite(mover)) {
		return Opposite(mover), true
	}
	if b.MovesMade() < b.moveLimit {
		return Empty, false
	}
	return Empty, true
}

// GameOver reports whether either side has won or the game is drawn.
func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}
