package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perftCount is a minimal leaf-counting perft used only to exercise the
// move generator in this package's own tests; the full reference-count
// regression lives in the perft package.
func perftCount(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var total uint64
	for _, m := range pos.LegalMoves() {
		pos.DoMove(m)
		total += perftCount(pos, depth-1)
		pos.UndoMove()
	}
	return total
}

func TestPerftStartPos(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)

	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		require.Equal(t, c.nodes, perftCount(pos, c.depth), "depth %d", c.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, c := range cases {
		require.Equal(t, c.nodes, perftCount(pos, c.depth), "depth %d", c.depth)
	}
}

func TestStartPosHasNoSideInCheck(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)
	require.False(t, pos.IsInCheck(White))
	require.False(t, pos.IsInCheck(Black))
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var moves []Move
	pos.GenerateMoves(&moves)
	var sawOO, sawOOO bool
	for _, m := range moves {
		if m.Kind == Castle && m.From == SquareE1 && m.To == SquareG1 {
			sawOO = true
		}
		if m.Kind == Castle && m.From == SquareE1 && m.To == SquareC1 {
			sawOOO = true
		}
	}
	require.True(t, sawOO)
	require.True(t, sawOOO)
}
