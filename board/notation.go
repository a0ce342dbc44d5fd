// notation.go converts between the engine's Move representation and the
// long algebraic notation used on the UCI wire ("e2e4", "a7a8q").
package board

import "fmt"

var uciPromoFigure = map[byte]Figure{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// UCIToMove parses a move given in UCI's long algebraic notation against
// the current position, matching it against the legal moves so that
// Kind, captured piece and promotion are filled in correctly and a move
// that leaves the mover's own king in check is rejected.
func (pos *Position) UCIToMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("notation: malformed move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("notation: %w", err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("notation: %w", err)
	}
	var promo Figure
	if len(s) == 5 {
		fig, ok := uciPromoFigure[s[4]]
		if !ok {
			return Move{}, fmt.Errorf("notation: unknown promotion figure %q", string(s[4]))
		}
		promo = fig
	}

	for _, m := range pos.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Kind == Promotion && m.PromotionPiece.Figure() != promo {
			continue
		}
		if m.Kind != Promotion && promo != NoFigure {
			continue
		}
		return m, nil
	}
	return Move{}, fmt.Errorf("notation: no such move %q in current position", s)
}
