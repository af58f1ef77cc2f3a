package syntax

import (
	"strings"
	"unicode/utf8"

	"dfaregex/internal/orderedset"
)

// formatter accumulates the normalized form and keeps the first semantic error.
type formatter struct {
	strings.Builder
	pattern string
	err     *Error
}

func (f *formatter) fail(code ErrorCode, offset, length int) {
	if f.err == nil {
		f.err = &Error{Code: code, Offset: offset, Length: length, Pattern: f.pattern}
	}
}

func (f *formatter) literal(r rune) {
	if isOperator(r) {
		f.WriteRune(Escape)
	}
	f.WriteRune(r)
}

// union writes set as a parenthesized alternation, followed by the complement
// operator when negated.
func (f *formatter) union(set *orderedset.Set[rune], negated bool) {
	f.WriteRune(OpenParen)
	for i, r := range set.Items() {
		if i > 0 {
			f.WriteRune(Alternate)
		}
		f.literal(r)
	}
	f.WriteRune(CloseParen)
	if negated {
		f.WriteRune(Complement)
	}
}

func (a *Alternation) format(f *formatter) {
	for i, b := range a.Branches {
		if i > 0 {
			f.WriteRune(Alternate)
		}
		b.format(f)
	}
}

func (s *Sequence) format(f *formatter) {
	for i, t := range s.Terms {
		if i > 0 {
			f.WriteRune(Concat)
		}
		t.format(f)
	}
}

func (t *Term) format(f *formatter) {
	t.Atom.format(f)
	for _, q := range t.Quantifiers {
		f.WriteString(q)
	}
}

func (a *Atom) format(f *formatter) {
	switch {
	case a.Group != nil:
		f.WriteRune(OpenParen)
		a.Group.format(f)
		f.WriteRune(CloseParen)
	case a.Class != nil:
		a.Class.format(f)
	case a.Any:
		f.WriteRune(AnyChar)
	case a.Escaped != "":
		r, _ := utf8.DecodeRuneInString(a.Escaped[1:])
		if set, negated, ok := shorthand(r); ok {
			f.union(set, negated)
			return
		}
		f.literal(unescape(r))
	default:
		r, _ := utf8.DecodeRuneInString(a.Literal)
		f.literal(r)
	}
}

// maxRange bounds how many runes a single class range may expand to.
const maxRange = 1024

func (c *Class) format(f *formatter) {
	set := orderedset.New[rune]()
	for _, item := range c.Items {
		lo, ok := item.bound(item.Low, set, f)
		if !ok {
			continue
		}
		if item.High == "" {
			set.Add(lo)
			continue
		}
		hi, ok := item.bound(item.High, nil, f)
		if !ok {
			continue
		}
		span := len(item.Low) + 1 + len(item.High)
		if hi < lo || hi-lo >= maxRange {
			f.fail(ErrInvalidRange, item.Pos.Offset, span)
			continue
		}
		for r := lo; r <= hi; r++ {
			set.Add(r)
		}
	}
	f.union(set, c.Negated)
}

// bound decodes one side of a class item. A shorthand escape is merged into
// the class set and is never a range bound.
func (item *ClassItem) bound(text string, into *orderedset.Set[rune], f *formatter) (rune, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if r != Escape || size == len(text) {
		return r, true
	}
	r, _ = utf8.DecodeRuneInString(text[size:])
	if set, negated, ok := shorthand(r); ok {
		if negated || into == nil || item.High != "" {
			f.fail(ErrInvalidEscape, item.Pos.Offset, len(text))
			return 0, false
		}
		into.Union(set)
		return 0, false
	}
	return unescape(r), true
}

func shorthand(r rune) (set *orderedset.Set[rune], negated bool, ok bool) {
	switch r {
	case 'd', 'D':
		set = runeRange('0', '9')
	case 'w', 'W':
		set = runeRange('a', 'z')
		set.Union(runeRange('A', 'Z'))
		set.Union(runeRange('0', '9'))
		set.Add('_')
	case 's', 'S':
		set = orderedset.New(' ', '\t', '\n', '\r', '\f', '\v')
	default:
		return nil, false, false
	}
	return set, r >= 'A' && r <= 'Z', true
}

func runeRange(lo, hi rune) *orderedset.Set[rune] {
	set := orderedset.New[rune]()
	for r := lo; r <= hi; r++ {
		set.Add(r)
	}
	return set
}

func unescape(r rune) rune {
	switch r {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	}
	return r
}
