package regexlib

import (
	"fmt"
	"io"
	"strings"

	"dfaregex/internal/orderedset"
	"dfaregex/internal/syntax"
)

// Stage selects how far the compilation pipeline runs.
type Stage int

const (
	StageNFA Stage = iota
	StageDFA
	StageMinimalDFA
)

func (s Stage) String() string {
	switch s {
	case StageNFA:
		return "nfa"
	case StageDFA:
		return "dfa"
	case StageMinimalDFA:
		return "min"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ParseStage is the inverse of Stage.String.
func ParseStage(s string) (Stage, error) {
	for st := StageNFA; st <= StageMinimalDFA; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("regexlib: unknown stage %q", s)
}

// compiled is the product of one pipeline run. dfa is minimized in place when
// the run reaches StageMinimalDFA.
type compiled struct {
	info    syntax.Info
	postfix string
	nfa     *graph
	dfa     *graph
	live    *orderedset.Set[StateID]
}

// build runs the pipeline up to stage. When trace is not nil every automaton
// is rendered into it before the next phase consumes it.
func build(pattern string, stage Stage, trace *strings.Builder) (*compiled, error) {
	info, err := syntax.Validate(pattern)
	if err != nil {
		return nil, err
	}
	c := &compiled{info: info, postfix: toPostfix(info.Formatted)}
	if trace != nil {
		fmt.Fprintf(trace, "Original pattern:\t\t%s\n", info.Pattern)
		fmt.Fprintf(trace, "Pattern after formatting:\t%s\n", info.Formatted)
		fmt.Fprintf(trace, "Pattern after postfix:\t\t%s\n\n", c.postfix)
	}

	c.nfa = buildNFA(c.postfix)
	traceTable(trace, "NFA Table:", c.nfa)
	if stage == StageNFA {
		return c, nil
	}

	c.dfa = toDFA(c.nfa)
	traceTable(trace, "DFA Table:", c.dfa)
	if stage == StageDFA {
		return c, nil
	}

	c.live = minimize(c.dfa)
	traceTable(trace, "Minimized DFA Table:", c.dfa)
	return c, nil
}

func traceTable(trace *strings.Builder, title string, g *graph) {
	if trace == nil {
		return
	}
	trace.WriteString("\n" + title + "\n")
	width := writeTable(trace, g)
	trace.WriteString(strings.Repeat("*", width) + "\n")
}

// ExportDOT compiles pattern up to stage and writes that automaton as a
// Graphviz digraph.
func ExportDOT(w io.Writer, pattern string, stage Stage) error {
	c, err := build(pattern, stage, nil)
	if err != nil {
		return err
	}
	if stage == StageNFA {
		return writeDOT(w, c.nfa)
	}
	return writeDOT(w, c.dfa)
}
