package search

import (
	"testing"
	"time"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/SimjanovskiNikola/chesscore/eval"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, fen string) (*Engine, *board.Position) {
	t.Helper()
	pos, err := board.PositionFromFEN(fen)
	require.NoError(t, err)
	tt := NewTranspositionTable(1)
	eng := NewEngine(pos, tt, eval.NewMaterial(), nil, Options{})
	return eng, pos
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black king on g8, white king on g6 covers f7/g7/h7; Qa8 checks along
	// the eighth rank and is the only mate in one (Qh7+ allows Kf8).
	eng, _ := newTestEngine(t, "6k1/8/6K1/8/8/8/8/7Q w - - 0 1")
	tc := NewFixedDepthTimeControl(eng.Position, 3)
	tc.Start()
	pv := eng.Search(tc)
	require.NotEmpty(t, pv)
	require.Equal(t, "h1a8", pv[0].UCI())
}

func TestSearchFindsWinningCapture(t *testing.T) {
	eng, _ := newTestEngine(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	tc := NewFixedDepthTimeControl(eng.Position, 2)
	tc.Start()
	pv := eng.Search(tc)
	require.NotEmpty(t, pv)
	require.Equal(t, "d1d5", pv[0].UCI())
}

func TestSearchReturnsEmptyPVOnCheckmate(t *testing.T) {
	eng, _ := newTestEngine(t, "1R5k/8/1R5K/8/8/8/8/8 b - - 0 1")
	tc := NewFixedDepthTimeControl(eng.Position, 1)
	tc.Start()
	pv := eng.Search(tc)
	require.Empty(t, pv)
}

// movesToMate converts a mate-encoded score into the UCI "mate N" count
// of full moves to the mating move, as uci.formatScore does.
func movesToMate(score int32) int {
	plies := MateValue - score
	if score < 0 {
		plies = MateValue + score
	}
	return int((plies + 1) / 2)
}

// scoreRecordingLogger keeps the score from the deepest completed
// iteration, so a test can inspect it without re-running the search.
type scoreRecordingLogger struct {
	NulLogger
	lastScore int32
}

func (l *scoreRecordingLogger) PrintPV(stats Stats, score int32, pv []board.Move) {
	l.lastScore = score
}

func TestSearchFindsMateInThree(t *testing.T) {
	pos, err := board.PositionFromFEN("2rr3k/pp3pp1/1nnqbN1p/3pN3/2pP4/2P3Q1/PPB4P/R4RK1 w - - 0 1")
	require.NoError(t, err)
	log := &scoreRecordingLogger{}
	eng := NewEngine(pos, NewTranspositionTable(1), eval.NewMaterial(), log, Options{})
	tc := NewFixedDepthTimeControl(eng.Position, 7)
	tc.Start()
	pv := eng.Search(tc)
	require.NotEmpty(t, pv)
	require.GreaterOrEqual(t, log.lastScore, MateThreshold)
	require.Equal(t, 3, movesToMate(log.lastScore))
}

func TestSearchFindsMateInFive(t *testing.T) {
	pos, err := board.PositionFromFEN("N1bk3r/P5pp/3b1p2/3B4/R2nP1nq/3P3N/1BP3KP/4Q2R b - - 0 1")
	require.NoError(t, err)
	log := &scoreRecordingLogger{}
	eng := NewEngine(pos, NewTranspositionTable(1), eval.NewMaterial(), log, Options{})
	tc := NewFixedDepthTimeControl(eng.Position, 9)
	tc.Start()
	pv := eng.Search(tc)
	require.NotEmpty(t, pv)
	require.GreaterOrEqual(t, log.lastScore, MateThreshold)
	require.Equal(t, 5, movesToMate(log.lastScore))
}

func TestSearchRespectsMoveTime(t *testing.T) {
	eng, _ := newTestEngine(t, board.FENStartPos)
	tc := NewMoveTimeControl(eng.Position, 50*time.Millisecond)
	tc.Start()
	start := time.Now()
	pv := eng.Search(tc)
	require.NotEmpty(t, pv)
	require.Less(t, time.Since(start), 2*time.Second)
}
