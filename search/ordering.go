// ordering.go scores pseudo-legal moves so the search tries the most
// promising ones first: the position's PV move, then the transposition
// table's move, then captures ordered by static exchange evaluation,
// then killer moves, then quiet moves ordered by history heuristic
// score. Rather than fully sorting the move list up front, the search
// loop calls selectNext once per move tried, which does one pass of a
// selection sort: the remaining moves are scanned for the best-scoring
// one, which is swapped to the front. This is cheaper than a full sort
// whenever a beta cutoff lets the search stop after only a few moves.
package search

import "github.com/SimjanovskiNikola/chesscore/board"

const (
	scorePV         int32 = 1 << 30
	scoreTT         int32 = 1 << 29
	scoreGoodCapture int32 = 1 << 20
	scoreKiller0    int32 = 1 << 17
	scoreKiller1    int32 = 1<<17 - 1
)

// HistoryTable accumulates a score for quiet moves that have caused beta
// cutoffs in the past, indexed by side to move, origin and destination
// square.
type HistoryTable struct {
	table [board.ColorArraySize][64][64]int32
}

func (h *HistoryTable) score(us board.Color, m board.Move) int32 {
	return h.table[us][m.From][m.To]
}

// Update rewards m for causing a cutoff at depth. Scores are clamped so a
// long search cannot overflow them.
func (h *HistoryTable) Update(us board.Color, m board.Move, depth int) {
	v := &h.table[us][m.From][m.To]
	*v += int32(depth * depth)
	if *v > 1<<16 {
		for c := range h.table {
			for f := range h.table[c] {
				for t := range h.table[c][f] {
					h.table[c][f][t] /= 2
				}
			}
		}
	}
}

// killerPair holds the two most recent quiet moves that caused a beta
// cutoff at a given ply.
type killerPair [2]board.Move

func (k *killerPair) update(m board.Move) {
	if m == k[0] {
		return
	}
	k[1] = k[0]
	k[0] = m
}

// scoreMoves assigns an ordering score to each of moves, given the
// position they were generated in and the ply's search context.
func scoreMoves(pos *board.Position, moves []board.Move, pvMove, ttMove board.Move, killers killerPair, hist *HistoryTable) []int32 {
	us := pos.Us()
	scores := make([]int32, len(moves))
	for i, m := range moves {
		switch {
		case m == pvMove:
			scores[i] = scorePV
		case m == ttMove:
			scores[i] = scoreTT
		case m.IsViolent():
			scores[i] = scoreGoodCapture + board.SEE(pos, m)
		case m == killers[0]:
			scores[i] = scoreKiller0
		case m == killers[1]:
			scores[i] = scoreKiller1
		default:
			scores[i] = hist.score(us, m)
		}
	}
	return scores
}

// selectNext performs one selection-sort step: it finds the
// best-scoring move at or after from, swaps it into position from, and
// returns it.
func selectNext(moves []board.Move, scores []int32, from int) board.Move {
	best := from
	for i := from + 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	moves[from], moves[best] = moves[best], moves[from]
	scores[from], scores[best] = scores[best], scores[from]
	return moves[from]
}
