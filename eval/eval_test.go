package eval

import (
	"testing"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPosIsSymmetric(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	require.Equal(t, int32(0), NewMaterial().Evaluate(pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/RR2K3 w - - 0 1")
	require.NoError(t, err)
	require.Greater(t, NewMaterial().Evaluate(pos), int32(0))
}

func TestEvaluateFlipsWithSideToMove(t *testing.T) {
	white, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/RR2K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/RR2K3 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, NewMaterial().Evaluate(white), -NewMaterial().Evaluate(black))
}
