// tt.go implements the transposition table: a fixed power-of-two sized
// array of single-slot entries keyed by the position's Zobrist hash.
// Mate scores are stored and retrieved relative to the current search
// node rather than the root, since a mate found N plies deeper than
// where the entry was stored is not the same mate distance from here.
package search

import (
	"unsafe"

	"github.com/SimjanovskiNikola/chesscore/board"
)

// Bound records which side of the search window a stored score is known
// to be exact, a lower bound, or an upper bound for.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

const (
	// Inf is used as a sentinel "no bound" search window edge.
	Inf = 30000
	// MateValue is the score of delivering mate right now.
	MateValue = 29000
	// MateThreshold marks scores that encode "mate in N plies" rather
	// than a material/positional evaluation.
	MateThreshold = MateValue - 1000
)

type ttEntry struct {
	key   uint64
	move  board.Move
	score int16
	depth int8
	bound Bound
	age   uint8
}

// TranspositionTable caches search results keyed by Zobrist hash.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
	age     uint8
}

// NewTranspositionTable builds a table that uses approximately sizeMB
// megabytes, rounded down to the nearest power-of-two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(unsafe.Sizeof(ttEntry{}))
	count := uint64(sizeMB) << 20 / entrySize
	if count == 0 {
		count = 1
	}
	for count&(count-1) != 0 {
		count &= count - 1
	}
	return &TranspositionTable{
		entries: make([]ttEntry, count),
		mask:    count - 1,
	}
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() int { return len(tt.entries) }

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttEntry{}
	}
	tt.age = 0
}

// NewSearch bumps the table's generation counter so that new stores take
// priority over entries from previous searches at the same index.
func (tt *TranspositionTable) NewSearch() { tt.age++ }

func scoreToTT(score int32, ply int) int16 {
	if score >= MateThreshold {
		score += int32(ply)
	} else if score <= -MateThreshold {
		score -= int32(ply)
	}
	return int16(score)
}

func scoreFromTT(score int16, ply int) int32 {
	s := int32(score)
	if s >= MateThreshold {
		s -= int32(ply)
	} else if s <= -MateThreshold {
		s += int32(ply)
	}
	return s
}

// Store records a search result for key. Replacement favors entries from
// an older search generation or a shallower previous search.
func (tt *TranspositionTable) Store(key uint64, depth, ply int, score int32, bound Bound, move board.Move) {
	idx := key & tt.mask
	e := &tt.entries[idx]
	if e.bound != BoundNone && e.age == tt.age && int(e.depth) > depth {
		return
	}
	e.key = key
	e.move = move
	e.score = scoreToTT(score, ply)
	e.depth = int8(depth)
	e.bound = bound
	e.age = tt.age
}

// Probe looks up key. ok is false if there is no usable entry.
func (tt *TranspositionTable) Probe(key uint64, ply int) (entry ttEntry, ok bool) {
	e := tt.entries[key&tt.mask]
	if e.bound == BoundNone || e.key != key {
		return ttEntry{}, false
	}
	e.score = int16(scoreFromTT(e.score, ply))
	return e, true
}

// Move returns the entry's stored move.
func (e ttEntry) Move() board.Move { return e.move }

// Depth returns the entry's stored search depth.
func (e ttEntry) Depth() int { return int(e.depth) }

// Score returns the entry's score, already converted from mate-distance
// encoding by Probe.
func (e ttEntry) Score() int32 { return int32(e.score) }

// Bound returns the entry's bound kind.
func (e ttEntry) Bound() Bound { return e.bound }
