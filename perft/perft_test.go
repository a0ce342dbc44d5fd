package perft

import (
	_ "embed"
	"testing"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixture struct {
	Name   string  `yaml:"name"`
	FEN    string  `yaml:"fen"`
	Depths []int64 `yaml:"depths"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	var fixtures []fixture
	require.NoError(t, yaml.Unmarshal(fixturesYAML, &fixtures))
	return fixtures
}

func TestCountMatchesKnownPositions(t *testing.T) {
	for _, f := range loadFixtures(t) {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			pos, err := board.PositionFromFEN(f.FEN)
			require.NoError(t, err)
			for i, want := range f.Depths {
				if testing.Short() && want > 500000 {
					break
				}
				depth := i + 1
				got := Count(pos, depth)
				require.Equalf(t, uint64(want), got.Nodes, "%s depth %d", f.Name, depth)
			}
		})
	}
}

func TestSplitSumsToCount(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	split := Split(pos, 3)

	var sum uint64
	for _, n := range split {
		sum += n
	}
	require.Equal(t, Count(pos, 3).Nodes, sum)
}

func TestCountZeroDepthIsOneNode(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	require.Equal(t, uint64(1), Count(pos, 0).Nodes)
}

func BenchmarkCountStartPosDepth4(b *testing.B) {
	pos, _ := board.PositionFromFEN(board.FENStartPos)
	for i := 0; i < b.N; i++ {
		Count(pos, 4)
	}
}
