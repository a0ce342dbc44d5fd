// search.go implements iterative deepening over a negamax alpha-beta
// tree search with check extension, quiescence search at the frontier,
// and transposition-table/killer/history move ordering. Null-move
// pruning, late move reduction and futility pruning are deliberately
// not implemented here.
package search

import (
	"github.com/SimjanovskiNikola/chesscore/board"
	"github.com/SimjanovskiNikola/chesscore/eval"
)

const (
	checkDepthExtension     = 1
	initialAspirationWindow = 21
	checkpointStep          = 10000
	deltaMargin             = 150
)

// Options carries knobs that alter search behavior but not its result's
// correctness.
type Options struct {
	AnalyseMode bool // not read by the search; Log.PrintPV runs after every completed depth either way
}

// Logger receives progress notifications while a search runs.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int32, pv []board.Move)
}

// NulLogger discards every notification.
type NulLogger struct{}

func (NulLogger) BeginSearch()                       {}
func (NulLogger) EndSearch()                         {}
func (NulLogger) PrintPV(Stats, int32, []board.Move) {}

// Engine searches a Position for its best move.
type Engine struct {
	Options   Options
	Log       Logger
	Stats     Stats
	Position  *board.Position
	Evaluator eval.Evaluator

	tt      *TranspositionTable
	pv      *triangularPV
	history *HistoryTable
	killers [maxPly]killerPair

	rootPly     int
	timeControl *TimeControl
	stopped     bool
	checkpoint  uint64
}

// NewEngine builds a search engine over pos (or the starting position,
// if pos is nil) sharing tt across games to keep its contents warm.
func NewEngine(pos *board.Position, tt *TranspositionTable, evaluator eval.Evaluator, log Logger, options Options) *Engine {
	if log == nil {
		log = NulLogger{}
	}
	if evaluator == nil {
		evaluator = eval.NewMaterial()
	}
	eng := &Engine{
		Options:   options,
		Log:       log,
		Evaluator: evaluator,
		tt:        tt,
		pv:        newTriangularPV(),
		history:   &HistoryTable{},
	}
	eng.SetPosition(pos)
	return eng
}

// SetPosition replaces the position being searched.
func (eng *Engine) SetPosition(pos *board.Position) {
	if pos != nil {
		eng.Position = pos
		return
	}
	start, _ := board.PositionFromFEN(board.FENStartPos)
	eng.Position = start
}

func (eng *Engine) ply() int { return eng.Position.Ply - eng.rootPly }

func (eng *Engine) score() int32 { return eng.Evaluator.Evaluate(eng.Position) }

// endPosition reports draws that do not require looking at the move
// list: the fifty-move rule and threefold repetition. Checkmate and
// stalemate are detected in searchTree, which already has the legal
// move list in hand.
func (eng *Engine) endPosition() (int32, bool) {
	pos := eng.Position
	if pos.HalfMoveClock >= 100 {
		return 0, true
	}
	if pos.IsRepetition() {
		return 0, true
	}
	return 0, false
}

// searchQuiescence resolves captures until the position is quiet, so
// the static evaluation at the search frontier is not misled by a
// hanging piece one move away. Checks are not considered: the position
// is assumed quiet enough once there is no good capture left.
func (eng *Engine) searchQuiescence(alpha, beta int32) int32 {
	eng.Stats.Nodes++
	if score, done := eng.endPosition(); done {
		return score
	}

	standPat := eng.score()
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	pos := eng.Position
	var captures []board.Move
	for _, m := range pos.LegalMoves() {
		if m.IsViolent() {
			captures = append(captures, m)
		}
	}
	scores := scoreMoves(pos, captures, board.NullMove, board.NullMove, killerPair{}, eng.history)

	for i := range captures {
		m := selectNext(captures, scores, i)

		// Delta pruning: skip captures that cannot plausibly raise alpha
		// even accounting for the captured piece's value.
		if standPat+captureValue(m)+deltaMargin < alpha {
			continue
		}
		if board.SEE(pos, m) < 0 {
			continue
		}

		pos.DoMove(m)
		score := -eng.searchQuiescence(-beta, -alpha)
		pos.UndoMove()

		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func captureValue(m board.Move) int32 {
	switch m.Kind {
	case board.EnPassant:
		return 100
	case board.Promotion:
		return 800
	default:
		return figureValue[m.CapturePiece.Figure()]
	}
}

var figureValue = [board.FigureArraySize]int32{
	board.Pawn: 100, board.Knight: 320, board.Bishop: 330,
	board.Rook: 500, board.Queen: 900, board.King: 0,
}

// searchTree is the negamax alpha-beta core. It fails soft: the
// returned score can lie outside [alpha, beta]; the caller decides
// what that means from the bound stored alongside it.
func (eng *Engine) searchTree(alpha, beta int32, depth int) int32 {
	ply := eng.ply()
	pvNode := alpha+1 < beta
	pos := eng.Position

	// Empty this ply's line before any early return, so a parent never
	// appends a stale tail left here by an earlier sibling.
	pvMove := eng.pv.moveAt(ply)
	eng.pv.clear(ply)

	eng.Stats.Nodes++
	if eng.Stats.Nodes >= eng.checkpoint {
		eng.checkpoint = eng.Stats.Nodes + checkpointStep
		if eng.timeControl.Stopped() {
			eng.stopped = true
		}
	}
	if eng.stopped {
		return alpha
	}
	if pvNode && ply > eng.Stats.SelDepth {
		eng.Stats.SelDepth = ply
	}

	if score, done := eng.endPosition(); done {
		if ply != 0 || score != 0 {
			return score
		}
	}

	// Check extension can push ply past depth; once it is within one of
	// maxPly, stop recursing so killers[ply] and the triangular PV table
	// (which reads ply+1) never go out of bounds.
	if ply >= maxPly-1 {
		return eng.score()
	}

	var ttMove board.Move
	if entry, ok := eng.tt.Probe(pos.Zobrist(), ply); ok {
		ttMove = entry.Move()
		if entry.Depth() >= depth {
			switch entry.Bound() {
			case BoundExact:
				if alpha < entry.Score() && entry.Score() < beta {
					eng.pv.clear(ply + 1)
					eng.pv.update(ply, ttMove)
				}
				return entry.Score()
			case BoundLower:
				if entry.Score() >= beta {
					return entry.Score()
				}
			case BoundUpper:
				if entry.Score() <= alpha {
					return entry.Score()
				}
			}
		}
	}

	if depth <= 0 {
		return eng.searchQuiescence(alpha, beta)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsInCheck(pos.Us()) {
			return -MateValue + int32(ply)
		}
		return 0
	}

	us := pos.Us()
	scores := scoreMoves(pos, moves, pvMove, ttMove, eng.killers[ply], eng.history)

	bestMove, bestScore := board.NullMove, int32(-Inf)
	localAlpha := alpha

	for i := range moves {
		m := selectNext(moves, scores, i)

		pos.DoMove(m)
		givesCheck := pos.IsInCheck(pos.Us())
		childDepth := depth - 1
		if givesCheck {
			childDepth += checkDepthExtension
		}

		var score int32
		if i == 0 {
			score = -eng.searchTree(-beta, -localAlpha, childDepth)
		} else {
			score = -eng.searchTree(-localAlpha-1, -localAlpha, childDepth)
			if score > localAlpha && score < beta {
				score = -eng.searchTree(-beta, -localAlpha, childDepth)
			}
		}
		pos.UndoMove()

		if eng.stopped {
			return localAlpha
		}

		if score >= beta {
			if m.IsQuiet() {
				eng.killers[ply].update(m)
				eng.history.Update(us, m, depth)
			}
			eng.tt.Store(pos.Zobrist(), depth, ply, score, BoundLower, m)
			return score
		}
		if score > bestScore {
			bestScore, bestMove = score, m
			if score > localAlpha {
				localAlpha = score
				eng.pv.update(ply, m)
			}
		}
	}

	bound := BoundExact
	if bestScore <= alpha {
		bound = BoundUpper
	}
	eng.tt.Store(pos.Zobrist(), depth, ply, bestScore, bound, bestMove)
	return bestScore
}

// search drives one iterative-deepening iteration with a gradually
// widening aspiration window around the previous iteration's score.
// Shallow depths search the full window, since a tight window around
// an unreliable estimate would just cause repeated re-searches.
func (eng *Engine) search(depth int, estimated int32) int32 {
	gamma, delta := estimated, int32(initialAspirationWindow)
	alpha, beta := max(gamma-delta, int32(-Inf)), min(gamma+delta, int32(Inf))
	if depth < 4 {
		alpha, beta = -Inf, Inf
	}

	score := estimated
	for !eng.stopped {
		score = eng.searchTree(alpha, beta, depth)
		switch {
		case score <= alpha:
			alpha = max(alpha-delta, int32(-Inf))
			delta += delta / 2
		case score >= beta:
			beta = min(beta+delta, int32(Inf))
			delta += delta / 2
		default:
			return score
		}
	}
	return score
}

// Search runs iterative deepening until tc says to stop, and returns the
// principal variation found, best move first. An empty slice means the
// game is already over in the current position.
func (eng *Engine) Search(tc *TimeControl) []board.Move {
	eng.Log.BeginSearch()
	defer eng.Log.EndSearch()

	eng.Stats = Stats{Depth: -1}
	eng.rootPly = eng.Position.Ply
	eng.timeControl = tc
	eng.stopped = false
	eng.checkpoint = checkpointStep
	eng.tt.NewSearch()

	var pv []board.Move
	score := int32(0)
	for depth := 1; depth < maxPly; depth++ {
		if !tc.NextDepth(depth) {
			break
		}
		eng.Stats.Depth = depth
		score = eng.search(depth, score)
		if !eng.stopped {
			pv = eng.pv.line(0)
			eng.Log.PrintPV(eng.Stats, score, pv)
		}
	}
	return pv
}
