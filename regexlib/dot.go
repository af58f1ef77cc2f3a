package regexlib

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeDOT prints a Graphviz rendering of the states reachable from g.start.
func writeDOT(w io.Writer, g *graph) error {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("    rankdir=LR;\n")

	states, _ := g.walk(g.start)
	for _, id := range states.Items() {
		s := g.states[id]
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    s%d [shape=%s];\n", id, shape)
		for _, sym := range s.symbols.Items() {
			label := sym.String()
			if sym == Epsilon {
				label = "ε"
			}
			for _, to := range s.trans[sym].Items() {
				fmt.Fprintf(&b, "    s%d -> s%d [label=%s];\n", id, to, strconv.Quote(label))
			}
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> s%d;\n", g.start)
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
