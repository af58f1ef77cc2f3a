// Package regexlib compiles regular expressions into minimized DFAs and scans
// strings with them.
//
// A pattern goes through validation (internal/syntax), postfix conversion,
// Thompson's NFA construction, subset construction and partition-refinement
// minimization. Only the minimized DFA is kept by a Regex.
package regexlib

import (
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"dfaregex/internal/orderedset"
	"dfaregex/internal/syntax"
)

// Error is returned by Compile when the pattern fails validation.
type Error = syntax.Error

// ErrorCode classifies an Error.
type ErrorCode = syntax.ErrorCode

const (
	ErrNone            = syntax.ErrNone
	ErrEmptyPattern    = syntax.ErrEmptyPattern
	ErrParenMismatch   = syntax.ErrParenMismatch
	ErrEmptyParen      = syntax.ErrEmptyParen
	ErrBracketMismatch = syntax.ErrBracketMismatch
	ErrEmptyBracket    = syntax.ErrEmptyBracket
	ErrOperandMissing  = syntax.ErrOperandMissing
	ErrInvalidEscape   = syntax.ErrInvalidEscape
	ErrInvalidRange    = syntax.ErrInvalidRange
	ErrMisplacedAnchor = syntax.ErrMisplacedAnchor
)

// ErrNotCompiled is returned by operations that need a compiled pattern.
var ErrNotCompiled = errors.New("regexlib: no pattern compiled")

// Regex holds one compiled pattern. Compilation takes an exclusive lock and
// matching a shared one, so a Regex may be used from several goroutines.
type Regex struct {
	mu sync.RWMutex

	greedy atomic.Bool

	pattern string
	atStart bool
	atEnd   bool
	dfa     *graph
	live    *orderedset.Set[StateID]

	lastCode   ErrorCode
	lastOffset int
	lastLength int
}

// New returns an empty, greedy Regex.
func New() *Regex {
	re := &Regex{lastOffset: -1, lastLength: -1}
	re.greedy.Store(true)
	return re
}

// Compile returns a greedy Regex for pattern.
func Compile(pattern string) (*Regex, error) {
	re := New()
	if err := re.Compile(pattern); err != nil {
		return nil, err
	}
	return re, nil
}

func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Compile replaces the automaton of re with one built from pattern. On a
// validation failure the previous automaton stays in place and the failure is
// recorded in LastErrorCode, LastErrorOffset and LastErrorLength.
func (re *Regex) Compile(pattern string) error {
	return re.compile(pattern, nil)
}

// CompileWithStats is Compile that also writes the formatted and postfix
// pattern and the NFA, DFA and minimized DFA transition tables to w.
func (re *Regex) CompileWithStats(pattern string, w io.Writer) error {
	if w == nil {
		return re.Compile(pattern)
	}
	var trace strings.Builder
	if err := re.compile(pattern, &trace); err != nil {
		return err
	}
	_, err := io.WriteString(w, trace.String())
	return err
}

func (re *Regex) compile(pattern string, trace *strings.Builder) error {
	re.mu.Lock()
	defer re.mu.Unlock()

	c, err := build(pattern, StageMinimalDFA, trace)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			re.lastCode, re.lastOffset, re.lastLength = serr.Code, serr.Offset, serr.Length
		}
		return err
	}
	re.lastCode, re.lastOffset, re.lastLength = ErrNone, -1, -1
	re.pattern = pattern
	re.atStart = c.info.MatchAtStart
	re.atEnd = c.info.MatchAtEnd
	re.dfa = c.dfa
	re.live = c.live
	return nil
}

// Pattern returns the last successfully compiled pattern.
func (re *Regex) Pattern() string {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.pattern
}

func (re *Regex) String() string { return re.Pattern() }

// IsReady reports whether a pattern has been compiled.
func (re *Regex) IsReady() bool {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.dfa != nil
}

// Greedy reports whether matches extend past the first accepting state.
func (re *Regex) Greedy() bool { return re.greedy.Load() }

// SetGreedy switches between longest (true) and first-acceptance matching.
// It affects subsequent matches only.
func (re *Regex) SetGreedy(greedy bool) { re.greedy.Store(greedy) }

func (re *Regex) LastErrorCode() ErrorCode {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.lastCode
}

// LastErrorOffset is the byte offset of the last validation failure, or -1.
func (re *Regex) LastErrorOffset() int {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.lastOffset
}

// LastErrorLength is the byte length of the offending substring, or -1.
func (re *Regex) LastErrorLength() int {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.lastLength
}

// StateCount returns the number of live states of the minimized DFA.
func (re *Regex) StateCount() int {
	re.mu.RLock()
	defer re.mu.RUnlock()
	return re.live.Len()
}

// ExportDOT writes the minimized DFA as a Graphviz digraph.
func (re *Regex) ExportDOT(w io.Writer) error {
	re.mu.RLock()
	defer re.mu.RUnlock()
	if re.dfa == nil {
		return ErrNotCompiled
	}
	return writeDOT(w, re.dfa)
}
