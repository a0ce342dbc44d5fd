// movegen.go generates moves. GenerateMoves produces every pseudo-legal
// move (it may leave the mover's own king in check); LegalMoves filters
// those down by actually making each move, checking the resulting
// position, and unmaking it again -- the same routine that answers
// "is this position in check" is used for both.
package board

// GenerateMoves appends every pseudo-legal move for the side to move to
// *moves.
func (pos *Position) GenerateMoves(moves *[]Move) {
	us, them := pos.Us(), pos.Them()
	occ := pos.Occupancy()
	theirs := pos.ByColor[them]
	empty := ^occ

	pos.generatePawnMoves(us, empty, theirs, moves)
	pos.generateJumpMoves(Knight, KnightAttacks[:], us, occ, moves)
	pos.generateSliderMoves(Bishop, us, occ, moves)
	pos.generateSliderMoves(Rook, us, occ, moves)
	pos.generateSliderMoves(Queen, us, occ, moves)
	pos.generateJumpMoves(King, KingAttacks[:], us, occ, moves)
	pos.generateCastleMoves(us, occ, moves)
}

// LegalMoves returns every legal move: pseudo-legal moves whose
// application does not leave the mover's own king in check.
func (pos *Position) LegalMoves() []Move {
	var pseudo []Move
	pos.GenerateMoves(&pseudo)
	legal := make([]Move, 0, len(pseudo))
	us := pos.Us()
	for _, m := range pseudo {
		pos.DoMove(m)
		if !pos.IsAttacked(pos.KingSquare(us), pos.Us()) {
			legal = append(legal, m)
		}
		pos.UndoMove()
	}
	return legal
}

func (pos *Position) generateJumpMoves(fig Figure, table []Bitboard, us Color, occ Bitboard, moves *[]Move) {
	pi := ColorFigure(us, fig)
	for from := pos.ByPiece(us, fig); from != 0; {
		sq := from.Pop()
		targets := table[sq] &^ pos.ByColor[us]
		pos.emitTargets(pi, sq, targets, moves)
	}
}

func (pos *Position) generateSliderMoves(fig Figure, us Color, occ Bitboard, moves *[]Move) {
	pi := ColorFigure(us, fig)
	for from := pos.ByPiece(us, fig); from != 0; {
		sq := from.Pop()
		var targets Bitboard
		switch fig {
		case Bishop:
			targets = BishopAttacks(sq, occ)
		case Rook:
			targets = RookAttacks(sq, occ)
		case Queen:
			targets = QueenAttacks(sq, occ)
		}
		targets &^= pos.ByColor[us]
		pos.emitTargets(pi, sq, targets, moves)
	}
}

func (pos *Position) emitTargets(pi Piece, from Square, targets Bitboard, moves *[]Move) {
	for targets != 0 {
		to := targets.Pop()
		if cap := pos.Get(to); cap != NoPiece {
			*moves = append(*moves, Move{Kind: Capture, From: from, To: to, Piece: pi, CapturePiece: cap, CaptureSq: to})
		} else {
			*moves = append(*moves, Move{Kind: Quiet, From: from, To: to, Piece: pi})
		}
	}
}

var promotionFigures = [...]Figure{Queen, Rook, Bishop, Knight}

func (pos *Position) generatePawnMoves(us Color, empty, theirs Bitboard, moves *[]Move) {
	pi := ColorFigure(us, Pawn)
	pawns := pos.ByPiece(us, Pawn)

	var startRank, promoRank int
	if us == White {
		startRank, promoRank = 1, 7
	} else {
		startRank, promoRank = 6, 0
	}

	for bb := pawns; bb != 0; {
		from := bb.Pop()
		// Single push.
		to := from.Relative(pawnForward(us), 0)
		if to.Rank() >= 0 && to.Rank() <= 7 && empty.Has(to) {
			pos.emitPawnAdvance(pi, us, from, to, promoRank, moves)
			// Double push from the start rank.
			if from.Rank() == startRank {
				to2 := from.Relative(2*pawnForward(us), 0)
				if empty.Has(to2) {
					*moves = append(*moves, Move{Kind: Quiet, From: from, To: to2, Piece: pi})
				}
			}
		}
		// Captures (including en passant).
		for _, df := range [2]int{-1, 1} {
			file := from.File() + df
			if file < 0 || file > 7 {
				continue
			}
			to := from.Relative(pawnForward(us), df)
			if theirs.Has(to) {
				pos.emitPawnCapture(pi, us, from, to, pos.Get(to), promoRank, moves)
			} else if pos.IsEnpassantSquare(to) {
				capSq := RankFile(from.Rank(), to.File())
				*moves = append(*moves, Move{
					Kind: EnPassant, From: from, To: to, Piece: pi,
					CapturePiece: ColorFigure(us.Opposite(), Pawn), CaptureSq: capSq,
				})
			}
		}
	}
}

func pawnForward(us Color) int {
	if us == White {
		return 1
	}
	return -1
}

func (pos *Position) emitPawnAdvance(pi Piece, us Color, from, to Square, promoRank int, moves *[]Move) {
	if to.Rank() == promoRank {
		for _, fig := range promotionFigures {
			*moves = append(*moves, Move{Kind: Promotion, From: from, To: to, Piece: pi, PromotionPiece: ColorFigure(us, fig)})
		}
		return
	}
	*moves = append(*moves, Move{Kind: Quiet, From: from, To: to, Piece: pi})
}

func (pos *Position) emitPawnCapture(pi Piece, us Color, from, to Square, captured Piece, promoRank int, moves *[]Move) {
	if to.Rank() == promoRank {
		for _, fig := range promotionFigures {
			*moves = append(*moves, Move{
				Kind: Promotion, From: from, To: to, Piece: pi,
				CapturePiece: captured, CaptureSq: to, PromotionPiece: ColorFigure(us, fig),
			})
		}
		return
	}
	*moves = append(*moves, Move{Kind: Capture, From: from, To: to, Piece: pi, CapturePiece: captured, CaptureSq: to})
}

func (pos *Position) generateCastleMoves(us Color, occ Bitboard, moves *[]Move) {
	them := us.Opposite()
	rank := 0
	if us == Black {
		rank = 7
	}
	kingSq := RankFile(rank, 4)
	if pos.Get(kingSq) != ColorFigure(us, King) {
		return
	}
	if pos.IsAttacked(kingSq, them) {
		return
	}

	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		oo, ooo = BlackOO, BlackOOO
	}

	if pos.CastlingAbility()&oo != 0 {
		f, g := RankFile(rank, 5), RankFile(rank, 6)
		if !occ.Has(f) && !occ.Has(g) && !pos.IsAttacked(f, them) && !pos.IsAttacked(g, them) {
			*moves = append(*moves, Move{Kind: Castle, From: kingSq, To: g, Piece: ColorFigure(us, King)})
		}
	}
	if pos.CastlingAbility()&ooo != 0 {
		b, c, d := RankFile(rank, 1), RankFile(rank, 2), RankFile(rank, 3)
		if !occ.Has(b) && !occ.Has(c) && !occ.Has(d) && !pos.IsAttacked(c, them) && !pos.IsAttacked(d, them) {
			*moves = append(*moves, Move{Kind: Castle, From: kingSq, To: c, Piece: ColorFigure(us, King)})
		}
	}
}

// IsAttacked reports whether sq is attacked by any piece of color by.
// This single routine backs check detection, castling legality and the
// legal-move filter, so "in check" always means the same thing
// everywhere it is asked.
func (pos *Position) IsAttacked(sq Square, by Color) bool {
	occ := pos.Occupancy()
	if KnightAttacks[sq]&pos.ByPiece(by, Knight) != 0 {
		return true
	}
	if KingAttacks[sq]&pos.ByPiece(by, King) != 0 {
		return true
	}
	if PawnAttacks[by.Opposite()][sq]&pos.ByPiece(by, Pawn) != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&(pos.ByPiece(by, Bishop)|pos.ByPiece(by, Queen)) != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(pos.ByPiece(by, Rook)|pos.ByPiece(by, Queen)) != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether col's king is currently attacked.
func (pos *Position) IsInCheck(col Color) bool {
	return pos.IsAttacked(pos.KingSquare(col), col.Opposite())
}
