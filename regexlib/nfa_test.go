package regexlib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildNFA(t *testing.T) {
	tests := []struct {
		postfix string
		edges   []string
		start   StateID
		accept  []StateID
	}{
		{
			postfix: "ab.",
			edges:   []string{"s0 a s1", "s1 epsilon s2", "s2 b s3"},
			start:   0,
			accept:  []StateID{3},
		},
		{
			postfix: "a*",
			edges: []string{
				"s0 a s1",
				"s1 epsilon s0", "s1 epsilon s3",
				"s2 epsilon s0", "s2 epsilon s3",
			},
			start:  2,
			accept: []StateID{3},
		},
		{
			postfix: "a+",
			edges: []string{
				"s0 a s1",
				"s1 epsilon s3",
				"s2 epsilon s0",
				"s3 epsilon s0",
			},
			start:  2,
			accept: []StateID{3},
		},
		{
			postfix: "ab|",
			edges: []string{
				"s0 a s1", "s1 epsilon s5",
				"s2 b s3", "s3 epsilon s5",
				"s4 epsilon s0", "s4 epsilon s2",
			},
			start:  4,
			accept: []StateID{5},
		},
		{
			postfix: "a?",
			edges: []string{
				"s0 a s1", "s1 epsilon s3",
				"s2 epsilon s0", "s2 epsilon s3",
			},
			start:  2,
			accept: []StateID{3},
		},
		{
			postfix: "_",
			edges:   []string{"s0 any s1"},
			start:   0,
			accept:  []StateID{1},
		},
		{
			postfix: "a^",
			edges: []string{
				"s0 a s1", "s1 epsilon s2",
				"s2 dummy s3", "s3 epsilon s7",
				"s4 any s5", "s5 epsilon s7",
				"s6 epsilon s0", "s6 epsilon s4",
			},
			start:  6,
			accept: []StateID{7},
		},
	}

	for _, test := range tests {
		g := buildNFA(test.postfix)
		if diff := cmp.Diff(edges(g), test.edges); diff != "" {
			t.Errorf("buildNFA(%q) edges diff (-got +want):\n%s", test.postfix, diff)
		}
		if g.start != test.start {
			t.Errorf("buildNFA(%q).start = %d, want %d", test.postfix, g.start, test.start)
		}
		if diff := cmp.Diff(accepting(g), test.accept); diff != "" {
			t.Errorf("buildNFA(%q) accepting diff (-got +want):\n%s", test.postfix, diff)
		}
	}
}

func TestBuildNFAEscapes(t *testing.T) {
	g := buildNFA(`\_\..`)
	want := []string{"s0 _ s1", "s1 epsilon s2", "s2 . s3"}
	if diff := cmp.Diff(edges(g), want); diff != "" {
		t.Errorf("edges diff (-got +want):\n%s", diff)
	}
}

func TestBuildNFAMalformed(t *testing.T) {
	for _, postfix := range []string{"ab", "a.", "*", "", "a|"} {
		mustPanic(t, "buildNFA("+postfix+")", func() { buildNFA(postfix) })
	}
}
