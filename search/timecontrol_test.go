package search

import (
	"testing"
	"time"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/stretchr/testify/require"
)

func TestFixedDepthTimeControlStopsAtDepth(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	tc := NewFixedDepthTimeControl(pos, 4)
	tc.Start()
	require.True(t, tc.NextDepth(4))
	require.False(t, tc.NextDepth(5))
}

func TestMoveTimeControlStopsAfterDeadline(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	tc := NewMoveTimeControl(pos, 20*time.Millisecond)
	tc.Start()
	require.False(t, tc.Stopped())
	time.Sleep(40 * time.Millisecond)
	require.True(t, tc.Stopped())
}

func TestTimeControlStopIsImmediate(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	tc := NewTimeControl(pos)
	tc.Start()
	require.False(t, tc.Stopped())
	tc.Stop()
	require.True(t, tc.Stopped())
}
