package game

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIllegalMove          = errors.New("illegal move")
	ErrEmptyHistory         = errors.New("no moves to retract")
	ErrUndoOrder            = errors.New("undo does not match the most recent move")
)
