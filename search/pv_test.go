package search

import (
	"testing"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/stretchr/testify/require"
)

func TestTriangularPVBuildsLineBottomUp(t *testing.T) {
	pv := newTriangularPV()
	m0 := board.Move{From: board.SquareE2, To: board.SquareE4}
	m1 := board.Move{From: board.SquareE7, To: board.SquareE5}
	m2 := board.Move{From: board.SquareG1, To: board.SquareF3}

	pv.clear(2)
	pv.update(2, m2)
	pv.clear(1)
	pv.update(1, m1)
	pv.clear(0)
	pv.update(0, m0)

	line := pv.line(0)
	require.Equal(t, []board.Move{m0, m1, m2}, line)
}

func TestTriangularPVClearTruncatesLine(t *testing.T) {
	pv := newTriangularPV()
	m0 := board.Move{From: board.SquareE2, To: board.SquareE4}
	pv.update(0, m0)
	require.Len(t, pv.line(0), 1)

	pv.clear(0)
	require.Empty(t, pv.line(0))
}
