package regexlib

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"

	"dfaregex/internal/orderedset"
)

// closureOf returns the states reachable from id through epsilon moves,
// id included.
func (g *graph) closureOf(id StateID) *orderedset.Set[StateID] {
	processed := orderedset.New[StateID]()
	unprocessed := orderedset.New(id)
	for unprocessed.Len() > 0 {
		s := unprocessed.At(0)
		unprocessed.RemoveAt(0)
		processed.Add(s)
		for _, to := range g.targets(s, Epsilon) {
			if !processed.Contains(to) {
				unprocessed.Add(to)
			}
		}
	}
	return processed
}

func (g *graph) closure(set *orderedset.Set[StateID]) *orderedset.Set[StateID] {
	all := orderedset.New[StateID]()
	for _, id := range set.Items() {
		all.Union(g.closureOf(id))
	}
	return all
}

// move returns the direct targets of set on sym.
func (g *graph) move(set *orderedset.Set[StateID], sym Symbol) *orderedset.Set[StateID] {
	out := orderedset.New[StateID]()
	for _, id := range set.Items() {
		for _, to := range g.targets(id, sym) {
			out.Add(to)
		}
	}
	return out
}

// subsetKey identifies a set of states of g independently of element order.
func (g *graph) subsetKey(set *orderedset.Set[StateID]) string {
	b := bitset.New(uint(len(g.states)))
	for _, id := range set.Items() {
		b.Set(uint(id))
	}
	// Every key of g has the same number of words.
	words := b.Bytes()
	buf := make([]byte, 0, 8*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// toDFA builds a DFA equivalent to nfa by subset construction. The wildcard
// and dummy symbols are part of the alphabet like any literal; epsilon is not.
func toDFA(nfa *graph) *graph {
	_, alphabet := nfa.walk(nfa.start)
	alphabet.Remove(Epsilon)

	dfa := &graph{}
	var subsets []*orderedset.Set[StateID]
	byKey := make(map[string]StateID)
	add := func(set *orderedset.Set[StateID]) StateID {
		id := dfa.newState()
		dfa.states[id].accept = nfa.anyAccepting(set)
		subsets = append(subsets, set)
		byKey[nfa.subsetKey(set)] = id
		return id
	}

	dfa.start = add(nfa.closureOf(nfa.start))

	// States are marked in creation order, so the next unmarked state is
	// simply the next index.
	for next := 0; next < len(subsets); next++ {
		from := StateID(next)
		for _, sym := range alphabet.Items() {
			moved := nfa.move(subsets[next], sym)
			if moved.Len() == 0 {
				continue
			}
			closed := nfa.closure(moved)
			to, ok := byKey[nfa.subsetKey(closed)]
			if !ok {
				to = add(closed)
			}
			dfa.addTransition(from, sym, to)
		}
	}
	return dfa
}
