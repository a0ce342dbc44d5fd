package uci

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// runDriver feeds commands (already newline-joined) to a Driver and
// returns everything it wrote before the driver returns, once "quit" is
// appended and processed.
func runDriver(t *testing.T, commands string) string {
	t.Helper()
	var out bytes.Buffer
	d := NewDriver(&out)

	pr, pw := io.Pipe()
	go func() {
		io.WriteString(pw, commands)
		io.WriteString(pw, "quit\n")
		pw.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := d.Run(ctx, pr)
	require.NoError(t, err)
	return out.String()
}

func TestDriverRespondsToUCIHandshake(t *testing.T) {
	out := runDriver(t, "uci\nisready\n")
	require.Contains(t, out, "id name chesscore")
	require.Contains(t, out, "uciok")
	require.Contains(t, out, "readyok")
}

func TestDriverPlaysFixedDepthSearch(t *testing.T) {
	out := runDriver(t, "position startpos\ngo depth 2\n")
	require.Contains(t, out, "bestmove")
}

func TestDriverAppliesPositionMoves(t *testing.T) {
	out := runDriver(t, "position startpos moves e2e4 e7e5\ngo depth 1\n")
	require.Contains(t, out, "bestmove")
}

func TestDriverRejectsMalformedFEN(t *testing.T) {
	out := runDriver(t, "position fen not-a-fen\nisready\n")
	require.Contains(t, out, "info string position:")
	require.Contains(t, out, "readyok")
}

func TestDriverKeepsRunningAfterIllegalMoveInMovesList(t *testing.T) {
	out := runDriver(t, "position startpos moves e2e4 e7e5 e1e8\ngo depth 1\n")
	require.Contains(t, out, "info string position: illegal move e1e8")
	require.Contains(t, out, "bestmove")
}

func TestDriverStopEndsSearchEarly(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out)
	pr, pw := io.Pipe()

	go func() {
		io.WriteString(pw, "position startpos\ngo infinite\n")
		time.Sleep(20 * time.Millisecond)
		io.WriteString(pw, "stop\n")
		time.Sleep(20 * time.Millisecond)
		io.WriteString(pw, "quit\n")
		pw.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := d.Run(ctx, pr)
	require.NoError(t, err)

	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	found := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "bestmove") {
			found = true
		}
	}
	require.True(t, found)
}
