// Package syntax validates raw regular expressions and rewrites them into the
// normalized infix form consumed by the automaton compiler.
//
// The normalized form makes every concatenation explicit, expands character
// classes and shorthand escapes into alternations, and escapes any literal
// that collides with one of the operators below.
package syntax

// Operators of the normalized infix form.
const (
	OpenParen  = '('
	CloseParen = ')'
	Alternate  = '|'
	Concat     = '.'
	ZeroOrOne  = '?'
	ZeroOrMore = '*'
	OneOrMore  = '+'
	Complement = '^'
	AnyChar    = '_'
	Escape     = '\\'
)

// Info is the result of a successful validation.
type Info struct {
	Pattern   string // raw pattern as given
	Formatted string // normalized infix form

	MatchAtStart bool // pattern began with ^
	MatchAtEnd   bool // pattern ended with $
}

// Validate checks pattern and returns its normalized form. Failures are
// returned as *Error.
func Validate(pattern string) (Info, error) {
	if pattern == "" {
		return Info{}, &Error{Code: ErrEmptyPattern, Pattern: pattern}
	}
	if err := prescan(pattern); err != nil {
		return Info{}, err
	}
	ast, err := parser.ParseString("", pattern)
	if err != nil {
		return Info{}, classify(pattern, err)
	}
	f := &formatter{pattern: pattern}
	ast.Body.format(f)
	if f.err != nil {
		return Info{}, f.err
	}
	return Info{
		Pattern:      pattern,
		Formatted:    f.String(),
		MatchAtStart: ast.AtStart,
		MatchAtEnd:   ast.AtEnd,
	}, nil
}

// isOperator reports whether r must be escaped to appear as a literal in the
// normalized form.
func isOperator(r rune) bool {
	switch r {
	case OpenParen, CloseParen, Alternate, Concat, ZeroOrOne, ZeroOrMore,
		OneOrMore, Complement, AnyChar, Escape:
		return true
	}
	return false
}
