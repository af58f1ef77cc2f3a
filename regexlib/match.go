package regexlib

// Match is one match found by FindAll. End is inclusive; a zero-length match
// has End == Begin-1.
type Match struct {
	Begin int
	End   int
	Text  string
}

func (m Match) Len() int { return m.End - m.Begin + 1 }

// FindMatch looks for the leftmost match inside subject[start..end], both
// bounds inclusive and counted in runes. It reports the inclusive bounds of
// the match; end < begin encodes a zero-length match at begin.
func (re *Regex) FindMatch(subject string, start, end int) (found bool, begin, last int) {
	return re.findMatch([]rune(subject), start, end)
}

// FindAll returns the matches of re in subject from left to right. Each search
// resumes after the previous match; a zero-length match moves on by one rune.
func (re *Regex) FindAll(subject string) []Match {
	input := []rune(subject)
	var out []Match
	for start := 0; ; {
		found, begin, last := re.findMatch(input, start, len(input)-1)
		if !found {
			break
		}
		out = append(out, Match{Begin: begin, End: last, Text: string(input[begin : last+1])})
		start = max(begin, last) + 1
		if start >= len(input) {
			break
		}
	}
	return out
}

func (re *Regex) findMatch(input []rune, start, end int) (bool, int, int) {
	re.mu.RLock()
	defer re.mu.RUnlock()
	if re.dfa == nil || start < 0 {
		return false, -1, -1
	}
	sc := scanner{
		dfa:     re.dfa,
		input:   input,
		greedy:  re.greedy.Load(),
		atStart: re.atStart,
		atEnd:   re.atEnd,
	}
	return sc.find(start, min(end, len(input)-1))
}

// scanner runs one search over a minimized DFA.
type scanner struct {
	dfa     *graph
	input   []rune
	greedy  bool
	atStart bool
	atEnd   bool
}

func (sc *scanner) find(from, to int) (bool, int, int) {
	d := sc.dfa
	begin, last := -1, -1
	accepted := false
	cur := d.start

	for i := from; i <= to; {
		if sc.greedy && sc.wildcardLoop(cur) {
			if begin == -1 {
				begin = i
			}
			i = sc.wildcardRun(cur, i, to)
		}

		next, ok := d.single(cur, Symbol(sc.input[i]))
		if !ok {
			next, ok = d.single(cur, Wildcard)
		}
		if !ok {
			if sc.atStart || accepted {
				break
			}
			// Retry one rune after where this attempt began.
			if begin != -1 {
				i = begin + 1
			} else {
				i++
			}
			begin, last = -1, -1
			cur = d.start
			continue
		}

		if begin == -1 {
			begin = i
		}
		if d.states[next].accept && (!sc.atEnd || i == to) {
			accepted, last = true, i
			if !sc.greedy {
				break
			}
		}
		cur = next
		i++
	}

	if accepted {
		return true, begin, last
	}
	if d.states[d.start].accept {
		return true, from, from - 1
	}
	return false, -1, -1
}

// wildcardLoop reports whether id consumes any rune and stays put.
func (sc *scanner) wildcardLoop(id StateID) bool {
	to, ok := sc.dfa.single(id, Wildcard)
	return ok && to == id
}

// wildcardRun is entered at index i in a state that loops on the wildcard.
// It returns the last index in [i, to] whose rune has a literal transition out
// of id, or i if there is none; every rune before the returned index is taken
// by the loop.
func (sc *scanner) wildcardRun(id StateID, i, to int) int {
	resume := i
	for j := i; j <= to; j++ {
		if _, ok := sc.dfa.single(id, Symbol(sc.input[j])); ok {
			resume = j
		}
	}
	return resume
}
