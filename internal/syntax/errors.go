package syntax

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// ErrorCode classifies a validation failure. ErrorCode values can be used as
// targets for errors.Is.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrEmptyPattern
	ErrParenMismatch
	ErrEmptyParen
	ErrBracketMismatch
	ErrEmptyBracket
	ErrOperandMissing
	ErrInvalidEscape
	ErrInvalidRange
	ErrMisplacedAnchor
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "none"
	case ErrEmptyPattern:
		return "empty pattern"
	case ErrParenMismatch:
		return "unbalanced parenthesis"
	case ErrEmptyParen:
		return "empty parentheses"
	case ErrBracketMismatch:
		return "unbalanced bracket"
	case ErrEmptyBracket:
		return "empty character class"
	case ErrOperandMissing:
		return "missing operand"
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidRange:
		return "invalid character range"
	case ErrMisplacedAnchor:
		return "misplaced anchor"
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

func (c ErrorCode) Error() string { return c.String() }

// Error reports where in the raw pattern validation failed. Offset and Length
// are byte positions into Pattern.
type Error struct {
	Code    ErrorCode
	Offset  int
	Length  int
	Pattern string
}

func (e *Error) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("syntax: %s at offset %d", e.Code, e.Offset)
	}
	return fmt.Sprintf("syntax: %s at offset %d: %q", e.Code, e.Offset, e.Substring())
}

func (e *Error) Is(target error) bool {
	c, ok := target.(ErrorCode)
	return ok && c == e.Code
}

// Substring returns the offending part of the pattern.
func (e *Error) Substring() string {
	end := min(e.Offset+e.Length, len(e.Pattern))
	if e.Offset < 0 || e.Offset > end {
		return ""
	}
	return e.Pattern[e.Offset:end]
}

// classify turns a participle failure into an Error. prescan already reported
// balance, empty groups and operators directly after '(' or '|', so what is
// left is a missing operand at the end of the pattern or a malformed class.
func classify(pattern string, err error) *Error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &Error{Code: ErrOperandMissing, Pattern: pattern}
	}
	off := min(max(perr.Position().Offset, 0), len(pattern))
	e := &Error{Code: ErrOperandMissing, Offset: off, Pattern: pattern}
	if off == len(pattern) {
		return e
	}
	e.Length = 1
	if pattern[off] == ']' {
		e.Code = ErrEmptyBracket
		if off > 0 && pattern[off-1] == '-' {
			e.Code, e.Offset, e.Length = ErrInvalidRange, off-1, 2
		}
	}
	return e
}
