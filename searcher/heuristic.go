package searcher

import "loa/game"

// Heuristic statically scores a position. A side whose pieces are already
// contiguous scores as a win, with the side to move checked first; a side
// with no pieces left scores as a loss.
func Heuristic(board *game.Board) int {
	turn := board.Turn()
	if board.PiecesContiguous(turn) {
		return winFor(turn)
	}
	if board.PiecesContiguous(game.Opposite(turn)) {
		return winFor(game.Opposite(turn))
	}
	if board.RegionCount(game.White) == 0 {
		return winFor(game.Black)
	}
	if board.RegionCount(game.Black) == 0 {
		return winFor(game.White)
	}
	return sideScore(board, game.Black) - sideScore(board, game.White)
}

func sideScore(board *game.Board, side game.Piece) int {
	spread := int(100 * board.AvgDistanceToCOM(side))
	return spread - 10*board.RegionCount(side) + board.LargestRegion(side)
}

func winFor(side game.Piece) int {
	if side == game.Black {
		return -WinningValue
	}
	return WinningValue
}

// terminalValue scores a finished game. Wins found with more depth remaining
// score further from zero so that faster wins are preferred.
func terminalValue(winner game.Piece, depth int) int {
	switch winner {
	case game.White:
		return WinningValue + depth
	case game.Black:
		return -WinningValue - depth
	default:
		return 0
	}
}
