package search

import (
	"testing"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/stretchr/testify/require"
)

func TestTranspositionTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.Move{Kind: board.Quiet, From: board.SquareE2, To: board.SquareE4}
	tt.Store(0xdeadbeef, 5, 0, 123, BoundExact, m)

	entry, ok := tt.Probe(0xdeadbeef, 0)
	require.True(t, ok)
	require.Equal(t, m, entry.Move())
	require.Equal(t, int32(123), entry.Score())
	require.Equal(t, 5, entry.Depth())
	require.Equal(t, BoundExact, entry.Bound())
}

func TestTranspositionTableProbeMissReportsNotFound(t *testing.T) {
	tt := NewTranspositionTable(1)
	_, ok := tt.Probe(0x1234, 0)
	require.False(t, ok)
}

func TestTranspositionTableMateScoreIsRelativeToPly(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(42, 10, 3, MateValue-1, BoundExact, board.NullMove)

	entry, ok := tt.Probe(42, 5)
	require.True(t, ok)
	// Stored 3 plies from root, probed 5 plies from root: the mate is 2
	// plies further away than it was when stored.
	require.Equal(t, int32(MateValue-1-2), entry.Score())
}

func TestTranspositionTableSizeIsPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(1)
	size := tt.Size()
	require.Equal(t, size, size&-size)
}

func TestTranspositionTableClearEmptiesEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(7, 1, 0, 10, BoundExact, board.NullMove)
	tt.Clear()
	_, ok := tt.Probe(7, 0)
	require.False(t, ok)
}
