package regexlib

import "dfaregex/internal/orderedset"

// noGroup buckets states that have no transition on the current symbol.
const noGroup = -1

// minimize merges equivalent states of d in place. It returns the states still
// tracked after dead states were pruned; d.start is moved to the start
// group's representative.
func minimize(d *graph) *orderedset.Set[StateID] {
	states, alphabet := d.walk(d.start)
	groups := partition(d, states, alphabet)

	start := d.start
	for _, group := range groups {
		if group.Len() == 0 {
			continue
		}
		rep := group.At(0)
		if group.Contains(d.start) {
			start = rep
		}
		if d.anyAccepting(group) {
			d.states[rep].accept = true
		}
		for _, old := range group.Items()[1:] {
			states.Remove(old)
			for _, id := range states.Items() {
				d.replaceTarget(id, old, rep)
			}
		}
	}
	d.start = start

	for i := 0; i < states.Len(); {
		if d.isDead(states.At(i)) {
			states.RemoveAt(i)
			continue
		}
		i++
	}
	return states
}

// partition refines {rejecting, accepting} until no group holds two states
// that a symbol sends into different groups. Any split restarts the scan.
func partition(d *graph, states *orderedset.Set[StateID], alphabet *orderedset.Set[Symbol]) []*orderedset.Set[StateID] {
	accepting := orderedset.New[StateID]()
	rejecting := orderedset.New[StateID]()
	for _, id := range states.Items() {
		if d.states[id].accept {
			accepting.Add(id)
		} else {
			rejecting.Add(id)
		}
	}
	var groups []*orderedset.Set[StateID]
	if rejecting.Len() > 0 {
		groups = append(groups, rejecting)
	}
	groups = append(groups, accepting)

	for split := true; split; {
		split = false
		owner := groupOf(groups, len(d.states))
	scan:
		for _, sym := range alphabet.Items() {
			for gi, group := range groups {
				if group.Len() < 2 {
					continue
				}
				buckets := bucketize(d, group, sym, owner)
				if len(buckets) > 1 {
					groups = append(groups[:gi:gi], groups[gi+1:]...)
					groups = append(groups, buckets...)
					split = true
					break scan
				}
			}
		}
	}
	return groups
}

// bucketize groups the members of group by the group their transition on sym
// leads into, in first-seen order.
func bucketize(d *graph, group *orderedset.Set[StateID], sym Symbol, owner []int) []*orderedset.Set[StateID] {
	byTarget := make(map[int]*orderedset.Set[StateID])
	var buckets []*orderedset.Set[StateID]
	for _, id := range group.Items() {
		target := noGroup
		if to, ok := d.single(id, sym); ok {
			target = owner[to]
		}
		b, ok := byTarget[target]
		if !ok {
			b = orderedset.New[StateID]()
			byTarget[target] = b
			buckets = append(buckets, b)
		}
		b.Add(id)
	}
	return buckets
}

// groupOf maps every state to the index of its group. States outside every
// group map to noGroup.
func groupOf(groups []*orderedset.Set[StateID], n int) []int {
	owner := make([]int, n)
	for i := range owner {
		owner[i] = noGroup
	}
	for gi, group := range groups {
		for _, id := range group.Items() {
			owner[id] = gi
		}
	}
	return owner
}
