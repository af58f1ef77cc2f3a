package syntax

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Every rune is its own token; escapes keep their backslash.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\(?s:.)`},
	{Name: "Meta", Pattern: `[()|*+?.\[\]^$-]`},
	{Name: "Char", Pattern: `(?s:.)`},
})

type Pattern struct {
	AtStart bool         `parser:"@'^'?"`
	Body    *Alternation `parser:"@@"`
	AtEnd   bool         `parser:"@'$'?"`
}

type Alternation struct {
	Branches []*Sequence `parser:"@@ ( '|' @@ )*"`
}

type Sequence struct {
	Terms []*Term `parser:"@@+"`
}

type Term struct {
	Atom        *Atom    `parser:"@@"`
	Quantifiers []string `parser:"@( '*' | '+' | '?' )*"`
}

type Atom struct {
	Pos lexer.Position

	Group   *Alternation `parser:"  '(' @@ ')'"`
	Class   *Class       `parser:"| @@"`
	Any     bool         `parser:"| @'.'"`
	Escaped string       `parser:"| @Escaped"`
	Literal string       `parser:"| @( Char | '-' )"`
}

// Class is a bracket expression. Inside brackets only ']' and '-' are special.
type Class struct {
	Pos lexer.Position

	Negated bool         `parser:"'[' @'^'?"`
	Items   []*ClassItem `parser:"@@+ ']'"`
}

type ClassItem struct {
	Pos lexer.Position

	Low  string `parser:"@( Char | Escaped | '-' | '(' | ')' | '|' | '*' | '+' | '?' | '.' | '^' | '$' | '[' )"`
	High string `parser:"( '-' @( Char | Escaped | '(' | ')' | '|' | '*' | '+' | '?' | '.' | '^' | '$' | '[' ) )?"`
}

var parser = participle.MustBuild[Pattern](
	participle.Lexer(patternLexer),
	participle.UseLookahead(2),
)
