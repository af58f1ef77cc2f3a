package regexlib

import (
	"strings"

	"dfaregex/internal/syntax"
)

func precedence(op rune) int {
	switch op {
	case syntax.OpenParen:
		return 0
	case syntax.Alternate:
		return 1
	case syntax.Concat:
		return 2
	case syntax.ZeroOrOne, syntax.ZeroOrMore, syntax.OneOrMore:
		return 3
	case syntax.Complement:
		return 4
	}
	return 5
}

// toPostfix converts a normalized infix pattern to postfix with the
// shunting-yard algorithm. Escape pairs go straight to the output. The input
// is trusted to be well formed.
func toPostfix(infix string) string {
	var (
		ops     []rune
		out     strings.Builder
		escaped bool
	)
	pop := func() rune {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return op
	}
	for _, r := range infix {
		if escaped || r == syntax.Escape {
			out.WriteRune(r)
			escaped = !escaped
			continue
		}
		switch r {
		case syntax.OpenParen:
			ops = append(ops, r)
		case syntax.CloseParen:
			for len(ops) > 0 && ops[len(ops)-1] != syntax.OpenParen {
				out.WriteRune(pop())
			}
			if len(ops) > 0 {
				pop()
			}
		default:
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(r) {
				out.WriteRune(pop())
			}
			ops = append(ops, r)
		}
	}
	for len(ops) > 0 {
		out.WriteRune(pop())
	}
	return out.String()
}
