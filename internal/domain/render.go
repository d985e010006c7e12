package domain

import (
	"fmt"
	"strings"
)

// Render draws the grid as a fixed-width box for debugging. Unknown cells
// show as a blank. The output is diagnostic only, not a parseable contract.
func (g *Grid) Render() string {
	var sb strings.Builder
	rule := func(left, mid, right string) {
		sb.WriteString(left)
		for c := 0; c < g.n; c++ {
			sb.WriteString("───")
			if c < g.n-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}
	rule("┌", "┬", "┐")
	for r := 0; r < g.n; r++ {
		sb.WriteString("│")
		for c := 0; c < g.n; c++ {
			if v := g.At(r, c); v.Known() {
				fmt.Fprintf(&sb, " %d │", v)
			} else {
				sb.WriteString("   │")
			}
		}
		sb.WriteByte('\n')
		if r < g.n-1 {
			rule("├", "┼", "┤")
		}
	}
	rule("└", "┴", "┘")
	return sb.String()
}
