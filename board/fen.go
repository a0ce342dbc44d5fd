// fen.go parses and formats positions in Forsyth-Edwards Notation.
// http://en.wikipedia.org/wiki/Forsyth%E2%80%93Edwards_Notation
package board

import (
	"fmt"
	"strconv"
	"strings"
)

var symbolToFigure = map[byte]Figure{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// PositionFromFEN parses a 6-field FEN string into a Position. Each field
// is validated independently; a malformed field is reported and rejected
// rather than partially applied.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	pos := NewPosition()
	if err := parsePiecePlacement(fields[0], pos); err != nil {
		return nil, fmt.Errorf("fen: piece placement: %w", err)
	}
	if err := parseSideToMove(fields[1], pos); err != nil {
		return nil, fmt.Errorf("fen: side to move: %w", err)
	}
	if err := parseCastlingAbility(fields[2], pos); err != nil {
		return nil, fmt.Errorf("fen: castling ability: %w", err)
	}
	if err := parseEnpassantSquare(fields[3], pos); err != nil {
		return nil, fmt.Errorf("fen: en-passant square: %w", err)
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		return nil, fmt.Errorf("fen: halfmove clock: %q", fields[4])
	}
	pos.HalfMoveClock = clock
	move, err := strconv.Atoi(fields[5])
	if err != nil || move < 1 {
		return nil, fmt.Errorf("fen: fullmove number: %q", fields[5])
	}
	pos.FullMoveNumber = move

	pos.curr.zobrist = computeZobrist(pos)
	if err := pos.Verify(); err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	return pos, nil
}

func parsePiecePlacement(s string, pos *Position) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range []byte(rankStr) {
			switch {
			case '1' <= c && c <= '8':
				file += int(c - '0')
			default:
				col := Black
				lower := c
				if 'A' <= c && c <= 'Z' {
					col = White
					lower = c + 'a' - 'A'
				}
				fig, ok := symbolToFigure[lower]
				if !ok {
					return fmt.Errorf("unknown piece symbol %q", string(c))
				}
				if file >= 8 {
					return fmt.Errorf("rank %d has too many squares", rank+1)
				}
				pos.Put(RankFile(rank, file), ColorFigure(col, fig))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("rank %d does not have 8 files", rank+1)
		}
	}
	return nil
}

func parseSideToMove(s string, pos *Position) error {
	switch s {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return fmt.Errorf("expected 'w' or 'b', got %q", s)
	}
	return nil
}

func parseCastlingAbility(s string, pos *Position) error {
	if s == "-" {
		pos.curr.castling = NoCastle
		return nil
	}
	var c Castle
	for _, r := range s {
		switch r {
		case 'K':
			c |= WhiteOO
		case 'Q':
			c |= WhiteOOO
		case 'k':
			c |= BlackOO
		case 'q':
			c |= BlackOOO
		default:
			return fmt.Errorf("unknown castling symbol %q", string(r))
		}
	}
	pos.curr.castling = c
	return nil
}

func parseEnpassantSquare(s string, pos *Position) error {
	if s == "-" {
		pos.curr.enpassant = SquareA1
		return nil
	}
	sq, err := SquareFromString(s)
	if err != nil {
		return err
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("en-passant square must be on rank 3 or 6, got %v", sq)
	}
	pos.curr.enpassant = sq
	return nil
}

// String formats the position back into FEN.
func (pos *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pi := pos.Get(RankFile(rank, file))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pi.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	if pos.SideToMove == White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	b.WriteString(pos.CastlingAbility().String())
	b.WriteByte(' ')
	if pos.curr.enpassant == SquareA1 {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.curr.enpassant.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.HalfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.FullMoveNumber))
	return b.String()
}
