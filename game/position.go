package game

import "math"

// CenterOfMass returns the mean column and row of side's pieces and their count.
// Both coordinates are 0 when side has no pieces.
func (b *Board) CenterOfMass(side Piece) (col, row float64, count int) {
	for _, sq := range AllSquares {
		if b.cells[sq] == side {
			col += float64(sq.Col())
			row += float64(sq.Row())
			count++
		}
	}
	if count == 0 {
		return 0, 0, 0
	}
	return col / float64(count), row / float64(count), count
}

// AvgDistanceToCOM returns the mean distance of side's pieces to their center
// of mass, measured along the axis over which the pieces are least spread.
// Ties between the axes measure along rows.
func (b *Board) AvgDistanceToCOM(side Piece) float64 {
	comCol, comRow, count := b.CenterOfMass(side)
	if count == 0 {
		return 0
	}

	minCol, maxCol := BOARD_SIZE, -1
	minRow, maxRow := BOARD_SIZE, -1
	for _, sq := range AllSquares {
		if b.cells[sq] != side {
			continue
		}
		minCol, maxCol = min(minCol, sq.Col()), max(maxCol, sq.Col())
		minRow, maxRow = min(minRow, sq.Row()), max(maxRow, sq.Row())
	}
	alongCols := maxCol-minCol < maxRow-minRow

	total := 0.0
	for _, sq := range AllSquares {
		if b.cells[sq] != side {
			continue
		}
		if alongCols {
			total += math.Abs(float64(sq.Col()) - comCol)
		} else {
			total += math.Abs(float64(sq.Row()) - comRow)
		}
	}
	return total / float64(count)
}
