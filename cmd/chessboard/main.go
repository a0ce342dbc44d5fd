// Command chessboard is a small dev-inspection tool: it loads a position
// from a FEN (or the initial position) plus an optional move list and
// prints a colorized board dump and the moves played so far.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SimjanovskiNikola/chesscore/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN of the position to display")
	moves := flag.String("moves", "", "space-separated long-algebraic moves to apply first")
	flag.Parse()

	pos, err := board.PositionFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessboard: %v\n", err)
		os.Exit(1)
	}

	for _, mv := range strings.Fields(*moves) {
		m, err := pos.UCIToMove(mv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessboard: %v\n", err)
			os.Exit(1)
		}
		pos.DoMove(m)
	}

	fmt.Print(pos.PrettyPrint())

	if history := pos.MoveHistory(); len(history) > 0 {
		rendered := make([]string, len(history))
		for i, m := range history {
			rendered[i] = m.UCI()
		}
		fmt.Println("moves played:", strings.Join(rendered, " "))
	}
}
