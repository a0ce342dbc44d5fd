package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSEERookTakesE5(t *testing.T) {
	pos, err := PositionFromFEN("1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1")
	require.NoError(t, err)

	var moves []Move
	pos.GenerateMoves(&moves)
	var capture Move
	for _, m := range moves {
		if m.Kind == Capture && m.To == SquareE5 && m.Piece.Figure() == Rook {
			capture = m
		}
	}
	require.Equal(t, Capture, capture.Kind)
	require.Equal(t, int32(100), SEE(pos, capture))
}

func TestSEEKnightTakesE5(t *testing.T) {
	pos, err := PositionFromFEN("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1")
	require.NoError(t, err)

	var moves []Move
	pos.GenerateMoves(&moves)
	var capture Move
	for _, m := range moves {
		if m.Kind == Capture && m.To == SquareE5 && m.Piece.Figure() == Knight {
			capture = m
		}
	}
	require.Equal(t, Capture, capture.Kind)
	require.Equal(t, int32(-225), SEE(pos, capture))
}
