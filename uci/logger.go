package uci

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/SimjanovskiNikola/chesscore/search"
)

// infoLogger renders search.Stats as UCI "info" lines, and keeps the
// latest reported Stats around for diag.StatsSource.
type infoLogger struct {
	out   io.Writer
	start time.Time

	mu   sync.Mutex
	last search.Stats
}

func (l *infoLogger) BeginSearch() { l.start = time.Now() }

// LastStats returns the most recently reported search statistics.
func (l *infoLogger) LastStats() search.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

func (l *infoLogger) EndSearch() {}

func (l *infoLogger) PrintPV(stats search.Stats, score int32, pv []board.Move) {
	l.mu.Lock()
	l.last = stats
	l.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "info depth %d seldepth %d ", stats.Depth, stats.SelDepth)
	fmt.Fprintf(&b, "score %s ", formatScore(score))

	elapsed := time.Since(l.start)
	if elapsed <= 0 {
		elapsed = time.Microsecond
	}
	millis := uint64(elapsed / time.Millisecond)
	nps := stats.Nodes * uint64(time.Second) / uint64(elapsed)
	fmt.Fprintf(&b, "nodes %d time %d nps %d ", stats.Nodes, millis, nps)

	fmt.Fprint(&b, "pv")
	for _, m := range pv {
		fmt.Fprintf(&b, " %s", m.UCI())
	}
	fmt.Fprintln(&b)

	fmt.Fprint(l.out, b.String())
}

// formatScore renders score as either "cp N" or, near a forced mate,
// "mate N" where N counts full moves (negative if this side is mated).
func formatScore(score int32) string {
	if score >= search.MateThreshold {
		plies := search.MateValue - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score <= -search.MateThreshold {
		plies := search.MateValue + score
		return fmt.Sprintf("mate -%d", (plies+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
