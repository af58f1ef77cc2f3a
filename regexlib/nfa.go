package regexlib

import (
	"fmt"

	"dfaregex/internal/syntax"
)

// fragment is a sub-automaton under construction.
type fragment struct {
	start, final StateID
}

func (g *graph) newFragment() fragment {
	return fragment{start: g.newState(), final: g.newState()}
}

func (g *graph) symbolFragment(sym Symbol) fragment {
	f := g.newFragment()
	g.addTransition(f.start, sym, f.final)
	return f
}

// buildNFA runs Thompson's construction over a postfix pattern. A postfix
// stream that does not reduce to exactly one fragment panics: the validator
// and toPostfix never produce one.
func buildNFA(postfix string) *graph {
	g := &graph{}
	var stack []fragment
	pop := func() fragment {
		if len(stack) == 0 {
			panic(fmt.Sprintf("regexlib: operand missing in postfix %q", postfix))
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}
	push := func(f fragment) { stack = append(stack, f) }

	escaped := false
	for _, r := range postfix {
		if !escaped && r == syntax.Escape {
			escaped = true
			continue
		}
		if escaped {
			push(g.symbolFragment(Symbol(r)))
			escaped = false
			continue
		}

		switch r {
		case syntax.AnyChar:
			push(g.symbolFragment(Wildcard))

		case syntax.Concat:
			b, a := pop(), pop()
			g.addTransition(a.final, Epsilon, b.start)
			push(fragment{start: a.start, final: b.final})

		case syntax.Alternate:
			b, a := pop(), pop()
			n := g.newFragment()
			g.addTransition(a.final, Epsilon, n.final)
			g.addTransition(b.final, Epsilon, n.final)
			g.addTransition(n.start, Epsilon, a.start)
			g.addTransition(n.start, Epsilon, b.start)
			push(n)

		case syntax.ZeroOrMore:
			a := pop()
			n := g.newFragment()
			g.addTransition(a.final, Epsilon, a.start)
			g.addTransition(a.final, Epsilon, n.final)
			g.addTransition(n.start, Epsilon, a.start)
			g.addTransition(n.start, Epsilon, n.final)
			push(n)

		case syntax.OneOrMore:
			a := pop()
			n := g.newFragment()
			g.addTransition(n.start, Epsilon, a.start)
			g.addTransition(n.final, Epsilon, a.start)
			g.addTransition(a.final, Epsilon, n.final)
			push(n)

		case syntax.ZeroOrOne:
			a := pop()
			n := g.newFragment()
			g.addTransition(n.start, Epsilon, a.start)
			g.addTransition(n.start, Epsilon, n.final)
			g.addTransition(a.final, Epsilon, n.final)
			push(n)

		case syntax.Complement:
			// a leads into a dead end; the wildcard branch carries acceptance.
			a := pop()
			dead := g.symbolFragment(Dummy)
			g.addTransition(a.final, Epsilon, dead.start)
			anyOne := g.symbolFragment(Wildcard)
			n := g.newFragment()
			g.addTransition(n.start, Epsilon, a.start)
			g.addTransition(n.start, Epsilon, anyOne.start)
			g.addTransition(anyOne.final, Epsilon, n.final)
			g.addTransition(dead.final, Epsilon, n.final)
			push(n)

		default:
			push(g.symbolFragment(Symbol(r)))
		}
	}

	if len(stack) != 1 {
		panic(fmt.Sprintf("regexlib: postfix %q left %d fragments", postfix, len(stack)))
	}
	g.states[stack[0].final].accept = true
	g.start = stack[0].start
	return g
}
