package eval

import "github.com/SimjanovskiNikola/chesscore/board"

// materialValueMG/EG are centipawn values per figure, indexed by
// board.Figure. NoFigure's slot is unused.
var materialValueMG = [board.FigureArraySize]int32{
	board.NoFigure: 0,
	board.Pawn:     82,
	board.Knight:   337,
	board.Bishop:   365,
	board.Rook:     477,
	board.Queen:    1025,
	board.King:     0,
}

var materialValueEG = [board.FigureArraySize]int32{
	board.NoFigure: 0,
	board.Pawn:     94,
	board.Knight:   281,
	board.Bishop:   297,
	board.Rook:     512,
	board.Queen:    936,
	board.King:     0,
}

// phaseWeight contributes to the game-phase estimate: pawns and kings do
// not count, since their number barely changes the character of the
// position the way disappearing minor/major pieces do.
var phaseWeight = [board.FigureArraySize]int32{
	board.NoFigure: 0,
	board.Pawn:     0,
	board.Knight:   1,
	board.Bishop:   1,
	board.Rook:     2,
	board.Queen:    4,
	board.King:     0,
}

// totalPhase is the phase value of the starting position's full set of
// non-pawn, non-king material: 4 knights + 4 bishops + 4 rooks + 2 queens.
const totalPhase = 4*1 + 4*1 + 4*2 + 2*4
