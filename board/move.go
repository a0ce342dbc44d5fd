package board

// MoveKind discriminates the tagged union that Move represents. Unlike a
// packed integer encoding, only the fields relevant to the active Kind
// are meaningful on a given Move value.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	Quiet
	Capture
	EnPassant
	Castle
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case EnPassant:
		return "enpassant"
	case Castle:
		return "castle"
	case Promotion:
		return "promotion"
	default:
		return "none"
	}
}

// Move is a position-dependent move, represented as a tagged union over
// Kind rather than a packed bitfield: Quiet and Castle only use From/To/
// Piece, Capture and EnPassant additionally set CapturePiece, and
// Promotion sets PromotionPiece (and, for a capturing promotion,
// CapturePiece too).
type Move struct {
	Kind MoveKind

	From, To Square
	Piece    Piece // the piece that is moving, before the move

	CapturePiece Piece // piece removed from the board, if any
	CaptureSq    Square

	PromotionPiece Piece // the piece the pawn becomes, for Kind == Promotion

	// CastleRookFrom/To are only meaningful for Kind == Castle.
	CastleRookFrom, CastleRookTo Square
	CastleRook                  Piece

	// savedHalfClock lets UndoMove restore the halfmove clock, which is
	// not tracked on the per-ply state stack; it is not part of the
	// move's logical identity.
	savedHalfClock int
}

// NullMove is the zero Move, used as a sentinel for "no move".
var NullMove = Move{}

// IsQuiet reports whether the move changes no material.
func (m Move) IsQuiet() bool { return m.Kind == Quiet || m.Kind == Castle }

// IsViolent reports whether the move can change the position's score
// significantly: captures and promotions.
func (m Move) IsViolent() bool {
	return m.Kind == Capture || m.Kind == EnPassant || m.Kind == Promotion
}

// UCI renders the move in the long algebraic notation used by the UCI
// protocol, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += lowerFigure(m.PromotionPiece.Figure())
	}
	return s
}

func lowerFigure(f Figure) string {
	switch f {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

func (m Move) String() string { return m.UCI() }
