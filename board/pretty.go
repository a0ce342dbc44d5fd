// pretty.go renders a human-readable board dump, colorizing light and
// dark squares when stdout is a terminal. This is a debug aid only; it
// never runs on the UCI wire path, which must stay protocol-pure.
package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgWhite)
)

// PrettyPrint renders the board as an 8x8 grid, rank 8 first, with a
// trailing line naming the side to move.
func (pos *Position) PrettyPrint() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := RankFile(rank, file)
			sym := " " + pos.Get(sq).String() + " "
			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			b.WriteString(style.Sprint(sym))
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	fmt.Fprintf(&b, "side to move: %v\n", pos.SideToMove)
	return b.String()
}
