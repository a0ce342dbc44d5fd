// Package perft counts the leaves of the legal-move tree rooted at a
// position to a fixed depth, the standard way of testing and
// benchmarking a move generator: the counts for well-known positions
// are published and any divergence pinpoints a move generation bug.
package perft

import "github.com/SimjanovskiNikola/chesscore/board"

// Counters tallies leaf nodes and, at the leaf itself, what kind of
// move got it there.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
}

// Count walks every legal move to depth plies and returns the leaf
// counters. Count(pos, 0) is one node, the position itself.
func Count(pos *board.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var total Counters
	for _, m := range pos.LegalMoves() {
		pos.DoMove(m)
		if depth == 1 {
			total.Nodes++
			tallyMoveKind(&total, m)
			if pos.IsInCheck(pos.Us()) {
				total.Checks++
			}
		} else {
			total.add(Count(pos, depth-1))
		}
		pos.UndoMove()
	}
	return total
}

func tallyMoveKind(c *Counters, m board.Move) {
	switch m.Kind {
	case board.Capture:
		c.Captures++
	case board.EnPassant:
		c.Captures++
		c.EnPassant++
	case board.Castle:
		c.Castles++
	case board.Promotion:
		c.Promotions++
		if m.CapturePiece != board.NoPiece {
			c.Captures++
		}
	}
}

// Split reports, for each legal move at the root, the leaf node count
// of the subtree rooted one ply below it at depth-1. It is the
// standard way to localize a perft mismatch to a single root move.
func Split(pos *board.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range pos.LegalMoves() {
		pos.DoMove(m)
		out[m.UCI()] = Count(pos, depth-1).Nodes
		pos.UndoMove()
	}
	return out
}
