package syntax

import "unicode/utf8"

// shorthand escapes and the single-character escapes that stand for control
// characters. Any other letter or digit after a backslash is rejected.
var letterEscapes = map[rune]bool{
	'd': true, 'D': true, 'w': true, 'W': true, 's': true, 'S': true,
	't': true, 'n': true, 'r': true, 'f': true, 'v': true,
}

// prescan checks escapes, bracket and parenthesis balance, operators without
// an operand and anchor placement, none of which the grammar reports with a
// useful position.
func prescan(pattern string) *Error {
	var opens []int
	class := -1
	operand := false // the previous token can take a quantifier or end a branch
	openAt := -1     // offset of '(' when it was the previous token
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		prevOpen := openAt
		openAt = -1
		if r == Escape {
			if i+size >= len(pattern) {
				return &Error{Code: ErrInvalidEscape, Offset: i, Length: size, Pattern: pattern}
			}
			next, nsize := utf8.DecodeRuneInString(pattern[i+size:])
			if isAlnum(next) && !letterEscapes[next] {
				return &Error{Code: ErrInvalidEscape, Offset: i, Length: size + nsize, Pattern: pattern}
			}
			operand = true
			i += size + nsize
			continue
		}
		if class >= 0 {
			if r == ']' {
				class = -1
				operand = true
			}
			i += size
			continue
		}
		switch r {
		case '[':
			class = i
		case ']':
			return &Error{Code: ErrBracketMismatch, Offset: i, Length: 1, Pattern: pattern}
		case '(':
			opens = append(opens, i)
			operand = false
			openAt = i
		case ')':
			if len(opens) == 0 {
				return &Error{Code: ErrParenMismatch, Offset: i, Length: 1, Pattern: pattern}
			}
			if prevOpen >= 0 {
				return &Error{Code: ErrEmptyParen, Offset: prevOpen, Length: i + size - prevOpen, Pattern: pattern}
			}
			if !operand {
				return &Error{Code: ErrOperandMissing, Offset: i, Length: 1, Pattern: pattern}
			}
			opens = opens[:len(opens)-1]
		case '|':
			if !operand {
				return &Error{Code: ErrOperandMissing, Offset: i, Length: 1, Pattern: pattern}
			}
			operand = false
		case '*', '+', '?':
			if !operand {
				return &Error{Code: ErrOperandMissing, Offset: i, Length: 1, Pattern: pattern}
			}
		case '^':
			if i != 0 {
				return &Error{Code: ErrMisplacedAnchor, Offset: i, Length: 1, Pattern: pattern}
			}
		case '$':
			if i != len(pattern)-1 {
				return &Error{Code: ErrMisplacedAnchor, Offset: i, Length: 1, Pattern: pattern}
			}
		default:
			operand = true
		}
		i += size
	}
	if class >= 0 {
		return &Error{Code: ErrBracketMismatch, Offset: class, Length: 1, Pattern: pattern}
	}
	if len(opens) > 0 {
		return &Error{Code: ErrParenMismatch, Offset: opens[len(opens)-1], Length: 1, Pattern: pattern}
	}
	return nil
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
