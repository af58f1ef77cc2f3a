package regexlib

import (
	"fmt"
	"testing"
)

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

// edges lists every transition of g as "from sym to", states in id order.
func edges(g *graph) []string {
	var out []string
	for _, s := range g.states {
		for _, sym := range s.symbols.Items() {
			for _, to := range s.trans[sym].Items() {
				out = append(out, fmt.Sprintf("s%d %v s%d", s.id, sym, to))
			}
		}
	}
	return out
}

func accepting(g *graph) []StateID {
	var out []StateID
	for _, s := range g.states {
		if s.accept {
			out = append(out, s.id)
		}
	}
	return out
}

// accepts runs a whole string through a DFA the way the matcher steps:
// literal transition first, wildcard second.
func accepts(d *graph, s string) bool {
	cur := d.start
	for _, r := range s {
		next, ok := d.single(cur, Symbol(r))
		if !ok {
			next, ok = d.single(cur, Wildcard)
		}
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].accept
}

// words returns every string over alphabet of length at most n.
func words(alphabet string, n int) []string {
	out := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range level {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// clone copies g so a test can compare it with its minimized form.
func (g *graph) clone() *graph {
	c := &graph{start: g.start}
	for _, s := range g.states {
		id := c.newState()
		c.states[id].accept = s.accept
		for _, sym := range s.symbols.Items() {
			for _, to := range s.trans[sym].Items() {
				c.addTransition(id, sym, to)
			}
		}
	}
	return c
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}
