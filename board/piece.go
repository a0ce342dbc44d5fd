// Package board implements chess board representation: squares, pieces,
// bitboards, moves, attack tables and the position with its move generator.
package board

import "fmt"

var errInvalidSquare = fmt.Errorf("invalid square")

// Square identifies one of the 64 board cells. Square 0 is a1, 7 is h1,
// 56 is a8.
type Square uint8

const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8

	SquareMinValue = SquareA1
	SquareMaxValue = SquareH8
)

// RankFile builds a square from a 0-7 rank and 0-7 file.
func RankFile(rank, file int) Square {
	return Square(rank*8 + file)
}

// SquareFromString parses a square in the usual [a-h][1-8] format.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, errInvalidSquare
	}
	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return SquareA1, errInvalidSquare
	}
	return RankFile(r, f), nil
}

// Rank returns a number between 0 and 7.
func (sq Square) Rank() int { return int(sq / 8) }

// File returns a number between 0 and 7.
func (sq Square) File() int { return int(sq % 8) }

// Bitboard returns a bitboard with only sq set.
func (sq Square) Bitboard() Bitboard { return Bitboard(1) << uint(sq) }

// Relative returns the square offset by dr ranks and df files. The result
// is only meaningful if it stays on the board.
func (sq Square) Relative(dr, df int) Square { return sq + Square(dr*8+df) }

func (sq Square) String() string {
	return string([]byte{byte(sq.File()) + 'a', byte(sq.Rank()) + '1'})
}

// Color is one side of the game.
type Color uint8

const (
	NoColor Color = iota
	White
	Black

	ColorArraySize = int(iota)
)

// Opposite flips the color; undefined for NoColor.
func (c Color) Opposite() Color { return White + Black - c }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Figure is a piece kind without a color.
type Figure uint8

const (
	NoFigure Figure = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	FigureArraySize = int(iota)
	FigureMinValue  = Pawn
	FigureMaxValue  = King
)

var figureToSymbol = map[Figure]string{
	Pawn: "", Knight: "N", Bishop: "B", Rook: "R", Queen: "Q", King: "K",
}

func (f Figure) String() string { return figureToSymbol[f] }

// Piece packs a figure and a color into a single byte, (figure<<2)|color,
// so NoFigure+NoColor is the zero value (an empty square).
type Piece uint8

const (
	NoPiece Piece = 0
	PieceArraySize = int(FigureArraySize) << 2
)

// ColorFigure builds a piece from its parts.
func ColorFigure(c Color, f Figure) Piece { return Piece(f)<<2 | Piece(c) }

func (pi Piece) Color() Color   { return Color(pi & 3) }
func (pi Piece) Figure() Figure { return Figure(pi >> 2) }

func (pi Piece) String() string {
	if pi == NoPiece {
		return "."
	}
	s := figureToSymbol[pi.Figure()]
	if s == "" {
		s = "P"
	}
	if pi.Color() == Black {
		return string(s[0] + 'a' - 'A')
	}
	return s
}

// Castle is a bitmask of remaining castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle Castle = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

var castleToSymbol = map[Castle]byte{WhiteOO: 'K', WhiteOOO: 'Q', BlackOO: 'k', BlackOOO: 'q'}

func (c Castle) String() string {
	if c == NoCastle {
		return "-"
	}
	var r []byte
	for _, k := range []Castle{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if c&k != 0 {
			r = append(r, castleToSymbol[k])
		}
	}
	return string(r)
}

// CastlingRook returns the rook piece together with its start and
// destination square for a king move ending on kingEnd.
func CastlingRook(color Color, kingEnd Square) (Piece, Square, Square) {
	if kingEnd.File() == 6 { // king side
		rank := kingEnd.Rank()
		return ColorFigure(color, Rook), RankFile(rank, 7), RankFile(rank, 5)
	}
	rank := kingEnd.Rank()
	return ColorFigure(color, Rook), RankFile(rank, 0), RankFile(rank, 3)
}
