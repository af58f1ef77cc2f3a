package regexlib

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const minColumnWidth = 6

// writeTable renders the states reachable from g.start as a state by symbol
// grid, epsilon last, and returns the width of its widest line.
func writeTable(sb *strings.Builder, g *graph) int {
	states, symbols := g.walk(g.start)
	symbols.Remove(Epsilon)
	symbols.Add(Epsilon)

	widths := []int{8}
	header := []string{"State"}
	for _, sym := range symbols.Items() {
		name := sym.String()
		header = append(header, name)
		widths = append(widths, max(utf8.RuneCountInString(name), minColumnWidth))
	}
	row := func(cells []string) string {
		var b strings.Builder
		for i, c := range cells {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], c)
		}
		return b.String()
	}

	line := row(header)
	width := utf8.RuneCountInString(line)
	rule := strings.Repeat("-", width)
	sb.WriteString(rule + "\n" + line + "\n" + rule + "\n")

	transitions := 0
	for _, id := range states.Items() {
		s := g.states[id]
		cells := []string{s.String()}
		if id == g.start {
			cells[0] = ">" + cells[0]
		}
		for _, sym := range symbols.Items() {
			targets := g.targets(id, sym)
			if len(targets) == 0 {
				cells = append(cells, "--")
				continue
			}
			transitions += len(targets)
			names := make([]string, len(targets))
			for i, to := range targets {
				names[i] = g.states[to].String()
			}
			cells = append(cells, strings.Join(names, ", "))
		}
		line = row(cells)
		width = max(width, utf8.RuneCountInString(line))
		sb.WriteString(line + "\n")
	}

	footer := fmt.Sprintf("State Count: %d, Input Symbol Count: %d, Transition Count: %d",
		states.Len(), symbols.Len(), transitions)
	width = max(width, len(footer))
	sb.WriteString(strings.Repeat("-", width) + "\n" + footer + "\n")
	return width
}
