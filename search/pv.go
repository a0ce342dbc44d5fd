// pv.go keeps a triangular principal-variation table: pvTable[ply] holds
// the best line found starting at ply, truncated to pvLen[ply] moves.
// This is kept instead of a hash-indexed PV table (as a global
// transposition table would give) because the PV found during the
// current search is always self-consistent: it cannot be clobbered by
// another branch's store to the same hash bucket, and it survives a
// transposition-table resize or clear mid-search.
package search

import "github.com/SimjanovskiNikola/chesscore/board"

const maxPly = 128

type triangularPV struct {
	table [maxPly][maxPly]board.Move
	len   [maxPly]int
}

func newTriangularPV() *triangularPV {
	return &triangularPV{}
}

// clear marks the line starting at ply as empty. Called before searching
// a node, so a node that fails to improve alpha leaves no stale tail.
func (pv *triangularPV) clear(ply int) {
	pv.len[ply] = 0
}

// update records that m is the best move found at ply, and appends the
// line already found one ply deeper.
func (pv *triangularPV) update(ply int, m board.Move) {
	pv.table[ply][0] = m
	copy(pv.table[ply][1:1+pv.len[ply+1]], pv.table[ply+1][:pv.len[ply+1]])
	pv.len[ply] = pv.len[ply+1] + 1
}

// moveAt returns the first move of the line currently recorded at ply,
// or NullMove if none has been recorded yet. Read before clear so a new
// search of the same ply can prioritize the previous iteration's PV
// move in its move ordering.
func (pv *triangularPV) moveAt(ply int) board.Move {
	if pv.len[ply] == 0 {
		return board.NullMove
	}
	return pv.table[ply][0]
}

// line returns the principal variation starting at ply.
func (pv *triangularPV) line(ply int) []board.Move {
	out := make([]board.Move, pv.len[ply])
	copy(out, pv.table[ply][:pv.len[ply]])
	return out
}
