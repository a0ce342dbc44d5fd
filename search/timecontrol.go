// timecontrol.go splits the remaining clock time over an estimated
// number of moves left to play, the same allocator shape zurichess
// uses, minus pondering (this engine never searches on the opponent's
// clock: the spec's non-goals exclude it).
package search

import (
	"sync/atomic"
	"time"

	"github.com/SimjanovskiNikola/chesscore/board"
)

const (
	defaultMovesToGo   = 30
	defaultBranchFactor = 2
)

// TimeControl decides how deep and how long a search is allowed to run.
type TimeControl struct {
	WTime, WInc time.Duration
	BTime, BInc time.Duration
	Depth       int
	MovesToGo   int
	NodesLimit  uint64

	numPieces  int
	sideToMove board.Color
	stopped    atomic.Bool

	deadline time.Time
}

// NewTimeControl returns a time control with no limits; callers set
// fields before calling Start.
func NewTimeControl(pos *board.Position) *TimeControl {
	const inf = time.Duration(1<<62 - 1)
	return &TimeControl{
		WTime: inf, BTime: inf,
		Depth:      maxPly - 1,
		MovesToGo:  defaultMovesToGo,
		numPieces:  pos.Occupancy().Popcnt(),
		sideToMove: pos.Us(),
	}
}

// NewFixedDepthTimeControl returns a time control bounded only by depth.
func NewFixedDepthTimeControl(pos *board.Position, depth int) *TimeControl {
	tc := NewTimeControl(pos)
	tc.Depth = depth
	tc.MovesToGo = 1
	return tc
}

// NewMoveTimeControl returns a time control that treats movetime as the
// whole clock for one move, with no increment. Start divides that clock
// by its branching estimate, so the deadline falls well before movetime
// has elapsed; the search does not run for the full movetime.
func NewMoveTimeControl(pos *board.Position, movetime time.Duration) *TimeControl {
	tc := NewTimeControl(pos)
	tc.WTime, tc.BTime = movetime, movetime
	tc.WInc, tc.BInc = 0, 0
	tc.MovesToGo = 1
	return tc
}

func (tc *TimeControl) thinkingTime(t, inc time.Duration) time.Duration {
	n := time.Duration(tc.MovesToGo)
	if alloc := (t + (n-1)*inc) / n; alloc < t {
		return alloc
	}
	return t
}

// Start computes the search deadline. Must be called right before the
// search begins, so elapsed-time accounting starts from the right
// instant.
func (tc *TimeControl) Start() {
	branch := time.Duration(defaultBranchFactor)
	for n := tc.numPieces - 2; n > 0; n /= 6 {
		branch++
	}
	for i := 4; i > 0; i /= 2 {
		if tc.MovesToGo <= i {
			branch++
		}
	}

	var t, inc time.Duration
	if tc.sideToMove == board.White {
		t, inc = tc.WTime, tc.WInc
	} else {
		t, inc = tc.BTime, tc.BInc
	}

	tc.stopped.Store(false)
	searchTime := tc.thinkingTime(t, inc) / branch
	tc.deadline = time.Now().Add(searchTime)
}

// NextDepth reports whether the search should begin another iteration at
// depth.
func (tc *TimeControl) NextDepth(depth int) bool {
	return depth <= tc.Depth && (depth <= 2 || !tc.Stopped())
}

// Stop marks the search as stopped; the current best move is used.
func (tc *TimeControl) Stop() { tc.stopped.Store(true) }

// Stopped reports whether the search has been stopped, either
// explicitly or because the deadline passed.
func (tc *TimeControl) Stopped() bool {
	if tc.stopped.Load() {
		return true
	}
	if !tc.deadline.IsZero() && time.Now().After(tc.deadline) {
		tc.stopped.Store(true)
		return true
	}
	return false
}
