package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	require.NoError(t, err)
	return sq
}

func TestSquareNotation(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, sq := range AllSquares {
			got, err := ParseSquare(sq.String())
			require.NoError(t, err)
			require.Equal(t, sq, got)
		}
	})

	t.Run("corners", func(t *testing.T) {
		require.Equal(t, Sq(0, 0), mustSquare(t, "a1"))
		require.Equal(t, Sq(7, 7), mustSquare(t, "h8"))
		require.Equal(t, 7, mustSquare(t, "h1").Col())
		require.Equal(t, 0, mustSquare(t, "h1").Row())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "a", "i1", "a9", "a0", "a10"} {
			_, err := ParseSquare(s)
			require.Error(t, err, s)
		}
	})
}

func TestDistanceAndDirection(t *testing.T) {
	a1, c3, a5, e1, b3 := mustSquare(t, "a1"), mustSquare(t, "c3"), mustSquare(t, "a5"), mustSquare(t, "e1"), mustSquare(t, "b3")

	require.Equal(t, 2, Distance(a1, c3))
	require.Equal(t, 4, Distance(a1, a5))
	require.Equal(t, 4, Distance(e1, a1))
	require.Equal(t, NoLine, Distance(a1, b3))
	require.Equal(t, 0, Distance(a1, a1))

	require.Equal(t, NorthEast, DirectionOf(a1, c3))
	require.Equal(t, SouthWest, DirectionOf(c3, a1))
	require.Equal(t, North, DirectionOf(a1, a5))
	require.Equal(t, West, DirectionOf(e1, a1))
	require.Equal(t, NoDirection, DirectionOf(a1, b3))
	require.Equal(t, NoDirection, DirectionOf(a1, a1))

	require.False(t, OnLine(a1, a1), "A square is not on a line with itself")
	require.True(t, OnLine(a1, c3))
}

func TestMoveDest(t *testing.T) {
	c3 := mustSquare(t, "c3")

	got, ok := c3.MoveDest(NorthEast, 2)
	require.True(t, ok)
	require.Equal(t, mustSquare(t, "e5"), got)

	_, ok = c3.MoveDest(SouthWest, 3)
	require.False(t, ok, "Should fall off the board")

	_, ok = c3.MoveDest(NoDirection, 1)
	require.False(t, ok)

	require.Equal(t, SouthWest, NorthEast.Reverse())
	require.Equal(t, North, South.Reverse())
}

func TestAdjacent(t *testing.T) {
	require.Len(t, mustSquare(t, "a1").Adjacent(), 3, "Corner has 3 neighbors")
	require.Len(t, mustSquare(t, "a4").Adjacent(), 5, "Edge has 5 neighbors")
	require.Len(t, mustSquare(t, "d4").Adjacent(), 8, "Center has 8 neighbors")
	require.ElementsMatch(t,
		[]Square{mustSquare(t, "a2"), mustSquare(t, "b2"), mustSquare(t, "b1")},
		mustSquare(t, "a1").Adjacent())
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" b1-d3 ")
	require.NoError(t, err)
	require.Equal(t, NewMove(mustSquare(t, "b1"), mustSquare(t, "d3")), m)
	require.Equal(t, "b1-d3", m.String())

	require.True(t, m.CaptureMove().Capture)
	require.True(t, m.SameSquares(m.CaptureMove()))

	for _, s := range []string{"b1d3", "b1-", "z1-d3", "b1-d9"} {
		_, err := ParseMove(s)
		require.Error(t, err, s)
	}
}

func TestPiece(t *testing.T) {
	require.Equal(t, Black, Opposite(White))
	require.Equal(t, White, Opposite(Black))
	require.Equal(t, Empty, Opposite(Empty))
	require.Equal(t, "white", White.FullName())
	require.Equal(t, "b", Black.Abbrev())

	p, err := ParsePiece("black")
	require.NoError(t, err)
	require.Equal(t, Black, p)
	_, err = ParsePiece("x")
	require.Error(t, err)
}
