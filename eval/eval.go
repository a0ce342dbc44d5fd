// Package eval provides the default position evaluator: a tapered
// material-plus-piece-square-table score from the mover's point of
// view. The search only depends on the Evaluator interface, so any
// other oracle (book, tablebase-backed, or a future learned evaluator)
// can be substituted without touching search code.
package eval

import "github.com/SimjanovskiNikola/chesscore/board"

// Evaluator scores a position from the side-to-move's point of view: a
// positive score favors the side to move.
type Evaluator interface {
	Evaluate(pos *board.Position) int32
}

// Material is the default Evaluator: material balance plus
// piece-square-table terms, tapered between midgame and endgame tables
// by a phase estimate derived from remaining non-pawn material.
type Material struct{}

// NewMaterial returns the default evaluator.
func NewMaterial() Material { return Material{} }

func (Material) Evaluate(pos *board.Position) int32 {
	phase := gamePhase(pos)
	white := sideScore(pos, board.White, phase)
	black := sideScore(pos, board.Black, phase)
	score := white - black
	if pos.Us() == board.Black {
		score = -score
	}
	return score
}

// gamePhase returns a value between 0 (pure endgame) and totalPhase
// (full midgame material on the board).
func gamePhase(pos *board.Position) int32 {
	phase := int32(0)
	for fig, weight := range phaseWeight {
		if weight == 0 {
			continue
		}
		count := pos.ByFigure[fig].Popcnt()
		phase += int32(count) * weight
	}
	if phase > totalPhase {
		phase = totalPhase
	}
	return phase
}

func sideScore(pos *board.Position, col board.Color, phase int32) int32 {
	var mg, eg int32
	for fig := board.FigureMinValue; fig <= board.FigureMaxValue; fig++ {
		for bb := pos.ByPiece(col, fig); bb != 0; {
			sq := bb.Pop()
			idx := pstIndex(col, sq)
			mg += materialValueMG[fig] + pstMG[fig][idx]
			eg += materialValueEG[fig] + pstEG[fig][idx]
		}
	}
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}

// pstIndex mirrors the square vertically for black so a single table
// can be shared by both colors.
func pstIndex(col board.Color, sq board.Square) int {
	if col == board.White {
		return int(sq)
	}
	return int(board.RankFile(7-sq.Rank(), sq.File()))
}
