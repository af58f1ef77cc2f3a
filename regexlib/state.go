package regexlib

import (
	"fmt"
	"strconv"
	"unicode"

	"dfaregex/internal/orderedset"
)

// Symbol labels a transition: a literal rune or one of the reserved symbols.
type Symbol rune

const (
	// Epsilon moves consume no input.
	Epsilon Symbol = -1 - iota
	// Wildcard matches any single input rune.
	Wildcard
	// Dummy never occurs in input, so its transitions are never taken.
	Dummy
)

func (s Symbol) String() string {
	switch s {
	case Epsilon:
		return "epsilon"
	case Wildcard:
		return "any"
	case Dummy:
		return "dummy"
	}
	r := rune(s)
	if unicode.IsPrint(r) && r != ' ' {
		return string(r)
	}
	return strconv.QuoteRune(r)
}

// StateID addresses a state inside the graph that created it. IDs are dense
// and start at zero in every construction phase.
type StateID int

type state struct {
	id      StateID
	accept  bool
	symbols *orderedset.Set[Symbol] // order of first transition per symbol
	trans   map[Symbol]*orderedset.Set[StateID]
}

func (s *state) String() string {
	if s.accept {
		return fmt.Sprintf("{s%d}", s.id)
	}
	return fmt.Sprintf("s%d", s.id)
}

// graph is an arena of states. Transition tables hold StateIDs, so merging
// states during minimization is a rewrite of IDs.
type graph struct {
	states []*state
	start  StateID
}

func (g *graph) newState() StateID {
	id := StateID(len(g.states))
	g.states = append(g.states, &state{
		id:      id,
		symbols: orderedset.New[Symbol](),
		trans:   make(map[Symbol]*orderedset.Set[StateID]),
	})
	return id
}

func (g *graph) addTransition(from StateID, sym Symbol, to StateID) {
	s := g.states[from]
	set, ok := s.trans[sym]
	if !ok {
		set = orderedset.New[StateID]()
		s.trans[sym] = set
		s.symbols.Add(sym)
	}
	set.Add(to)
}

func (g *graph) targets(from StateID, sym Symbol) []StateID {
	return g.states[from].trans[sym].Items()
}

// single returns the only target of from on sym. More than one target is a
// broken DFA and panics.
func (g *graph) single(from StateID, sym Symbol) (StateID, bool) {
	set := g.states[from].trans[sym]
	switch set.Len() {
	case 0:
		return 0, false
	case 1:
		return set.At(0), true
	}
	panic(fmt.Sprintf("regexlib: state %d has %d transitions on %v", from, set.Len(), sym))
}

// replaceTarget points every transition of from that leads to old at rep and
// returns how many were rewritten.
func (g *graph) replaceTarget(from, old, rep StateID) int {
	n := 0
	s := g.states[from]
	for _, sym := range s.symbols.Items() {
		set := s.trans[sym]
		if set.Remove(old) {
			set.Add(rep)
			n++
		}
	}
	return n
}

// isDead reports whether id has no outgoing transitions at all.
func (g *graph) isDead(id StateID) bool {
	return len(g.states[id].trans) == 0
}

func (g *graph) anyAccepting(set *orderedset.Set[StateID]) bool {
	for _, id := range set.Items() {
		if g.states[id].accept {
			return true
		}
	}
	return false
}

// walk collects the states reachable from start and every symbol on their
// transitions, both in discovery order.
func (g *graph) walk(start StateID) (*orderedset.Set[StateID], *orderedset.Set[Symbol]) {
	states := orderedset.New[StateID]()
	symbols := orderedset.New[Symbol]()
	unprocessed := orderedset.New(start)
	for unprocessed.Len() > 0 {
		id := unprocessed.At(0)
		unprocessed.RemoveAt(0)
		states.Add(id)
		s := g.states[id]
		for _, sym := range s.symbols.Items() {
			symbols.Add(sym)
			for _, to := range s.trans[sym].Items() {
				if !states.Contains(to) {
					unprocessed.Add(to)
				}
			}
		}
	}
	return states, symbols
}
