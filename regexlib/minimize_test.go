package regexlib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMinimizeCounts(t *testing.T) {
	tests := []struct {
		pattern   string
		raw       int // states out of subset construction
		reachable int // states reachable after minimization
		live      int // reachable states minus dead ones
	}{
		{"a*", 2, 1, 1},
		{"ab", 3, 3, 2},
		{"a|ab", 3, 3, 2},
		{"(a|b)c", 4, 3, 2},
		{"(a|b)*", 3, 1, 1},
	}

	for _, test := range tests {
		c, err := build(test.pattern, StageDFA, nil)
		if err != nil {
			t.Fatalf("build(%q): %v", test.pattern, err)
		}
		if got := len(c.dfa.states); got != test.raw {
			t.Errorf("%q: raw DFA has %d states, want %d", test.pattern, got, test.raw)
		}
		live := minimize(c.dfa)
		reachable, _ := c.dfa.walk(c.dfa.start)
		if got := reachable.Len(); got != test.reachable {
			t.Errorf("%q: %d reachable states after minimize, want %d", test.pattern, got, test.reachable)
		}
		if got := live.Len(); got != test.live {
			t.Errorf("%q: %d live states, want %d", test.pattern, got, test.live)
		}
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	patterns := []string{
		"a|ab", "(a|b)*c", "a*b*", "(ab|a)*c", "a+b?", ".b", "(a|b)c",
		"[^a]b", "a.*c", "(a|b)*abb", "((a|b)(a|b))*", "a?a?a?aaa", "[^ab]*a",
	}
	inputs := words("abc", 5)

	for _, pat := range patterns {
		c, err := build(pat, StageDFA, nil)
		if err != nil {
			t.Fatalf("build(%q): %v", pat, err)
		}
		raw := c.dfa.clone()
		minimize(c.dfa)
		for _, in := range inputs {
			if got, want := accepts(c.dfa, in), accepts(raw, in); got != want {
				t.Errorf("%q on %q: minimized accepts = %v, raw = %v", pat, in, got, want)
			}
		}
	}
}

func TestMinimizeAlphabet(t *testing.T) {
	for _, pat := range []string{"a|ab", "[^a]", "x.y", "(ab)*c+", `\d?z`} {
		c, err := build(pat, StageMinimalDFA, nil)
		if err != nil {
			t.Fatalf("build(%q): %v", pat, err)
		}
		_, nfaSyms := c.nfa.walk(c.nfa.start)
		_, minSyms := c.dfa.walk(c.dfa.start)
		if minSyms.Contains(Epsilon) {
			t.Errorf("%q: minimized DFA uses epsilon", pat)
		}
		for _, sym := range minSyms.Items() {
			if !nfaSyms.Contains(sym) {
				t.Errorf("%q: minimized DFA uses %v, which the NFA does not", pat, sym)
			}
		}
	}
}

func TestPartition(t *testing.T) {
	c, err := build("(a|b)c", StageDFA, nil)
	if err != nil {
		t.Fatal(err)
	}
	states, alphabet := c.dfa.walk(c.dfa.start)
	groups := partition(c.dfa, states, alphabet)

	var got [][]StateID
	for _, g := range groups {
		got = append(got, g.Items())
	}
	want := [][]StateID{{3}, {0}, {1, 2}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("partition diff (-got +want):\n%s", diff)
	}
}
