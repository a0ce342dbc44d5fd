// Package search implements iterative-deepening alpha-beta search over a
// board.Position: a transposition table, killer/history move ordering,
// quiescence search and a triangular principal-variation table.
package search

// Stats summarizes one completed (or in-progress) search, reported to a
// Logger after every finished depth.
type Stats struct {
	Depth    int
	SelDepth int
	Nodes    uint64
}
