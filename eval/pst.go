package eval

import "github.com/SimjanovskiNikola/chesscore/board"

// pstMG/pstEG give each figure a positional bonus per square, White's
// point of view, square 0 = a1 ascending to square 63 = h8. These are a
// simplified, fixed stand-in for the file/rank bonus tables a tuned
// evaluator would learn; they are not retrained here, since the
// texel-tuning machinery that produced the teacher's weights is out of
// scope for this evaluator.
var pstMG, pstEG [board.FigureArraySize][64]int32

func init() {
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		pstMG[board.Pawn][sq] = pawnTableMG[rank][file]
		pstEG[board.Pawn][sq] = pawnTableEG[rank][file]
		pstMG[board.Knight][sq] = centerBonus(rank, file, 4) * 3
		pstEG[board.Knight][sq] = centerBonus(rank, file, 4) * 2
		pstMG[board.Bishop][sq] = centerBonus(rank, file, 4) * 2
		pstEG[board.Bishop][sq] = centerBonus(rank, file, 4)
		pstMG[board.Rook][sq] = rookTableMG[rank][file]
		pstEG[board.Rook][sq] = 0
		pstMG[board.Queen][sq] = centerBonus(rank, file, 4)
		pstEG[board.Queen][sq] = centerBonus(rank, file, 4)
		pstMG[board.King][sq] = kingTableMG[rank][file]
		pstEG[board.King][sq] = centerBonus(rank, file, 8) * 2
	}
}

// centerBonus rewards squares closer to the center of the board, scaled
// by weight.
func centerBonus(rank, file int, weight int32) int32 {
	dr, df := centerDist(rank), centerDist(file)
	return (6 - dr - df) * weight
}

// centerDist returns how far index v (0-7) is from the board's central
// pair of files/ranks (3 and 4): 0 for v in {3,4}, up to 3 at the edges.
func centerDist(v int) int {
	a, b := v-3, v-4
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a < b {
		return a
	}
	return b
}

// pawnTableMG/EG reward advanced, central pawns in the middlegame and
// advanced passed-looking pawns in the endgame. Indexed [rank][file].
var pawnTableMG = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{-6, 4, 4, -12, -12, 4, 4, -6},
	{-6, 4, 2, 8, 8, 2, 4, -6},
	{-4, 4, 8, 20, 20, 8, 4, -4},
	{-2, 6, 12, 24, 24, 12, 6, -2},
	{10, 14, 22, 28, 28, 22, 14, 10},
	{40, 40, 40, 40, 40, 40, 40, 40},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var pawnTableEG = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{24, 24, 24, 24, 24, 24, 24, 24},
	{48, 48, 48, 48, 48, 48, 48, 48},
	{80, 80, 80, 80, 80, 80, 80, 80},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// rookTableMG gives a bonus for a rook on the seventh rank and on the
// central files of the first rank, and a small penalty on the a- and
// h-files in between. Open files are not rewarded.
var rookTableMG = [8][8]int32{
	{0, 0, 0, 4, 4, 0, 0, 0},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{4, 8, 8, 8, 8, 8, 8, 4},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// kingTableMG rewards the king staying behind its pawn shelter, off the
// central files, in the middlegame.
var kingTableMG = [8][8]int32{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}
