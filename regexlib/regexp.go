// Package regexlib compiles patterns over lowercase letters with
// concatenation, alternation '|', Kleene star '*' and grouping into a
// Thompson NFA kept as a flat transition table, and matches strings
// against it.
package regexlib

import (
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"patternrec/internal/automaton"
	"patternrec/internal/dfa"
	"patternrec/internal/dot"
	"patternrec/internal/lexer"
	"patternrec/internal/matcher"
	"patternrec/internal/parser"
)

type (
	Automaton  = automaton.Automaton
	Transition = automaton.Transition
	DFA        = dfa.DFA

	LexError   = lexer.Error
	ParseError = parser.Error
	IOError    = dot.IOError
)

// Epsilon is the symbol reserved for transitions that consume no input. It
// can never be matched by a character of the input string.
const Epsilon = automaton.Epsilon

type Regex struct {
	pattern string
	nfa     Automaton
	m       *matcher.Matcher
}

// Compile parses pattern. Errors are *LexError or *ParseError; no partial
// automaton is returned.
func Compile(pattern string) (*Regex, error) {
	a, err := parser.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, nfa: a, m: matcher.New(a)}, nil
}

func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Match runs an automaton, e.g. one built by hand or loaded elsewhere.
func Match(a Automaton, input string) bool { return matcher.Match(a, input) }

func (r *Regex) String() string { return r.pattern }

func (r *Regex) Match(input string) bool { return r.m.Match(input) }

// MatchAll matches every input against the same automaton using up to
// workers goroutines (GOMAXPROCS when workers <= 0). Results keep input order.
func (r *Regex) MatchAll(inputs []string, workers int) []bool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]bool, len(inputs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			out[i] = r.m.Match(in)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Automaton returns a copy of the transition table.
func (r *Regex) Automaton() Automaton { return r.nfa.Clone() }

// States is the number of distinct states in the table.
func (r *Regex) States() int { return len(r.nfa.States()) }

// DFA returns the minimal deterministic automaton for the pattern.
func (r *Regex) DFA() *DFA { return dfa.Minimize(dfa.FromNFA(r.nfa)) }

// Print writes the table, one "source, symbol, branch1, branch2" line per record.
func (r *Regex) Print(w io.Writer) error { return automaton.Print(w, r.nfa) }

func (r *Regex) ExportDOT(w io.Writer) error { return dot.WriteNFA(w, r.nfa) }

func (r *Regex) ExportDFA(w io.Writer) error { return dot.WriteDFA(w, r.DFA()) }

// WriteDOTFile exports the NFA to path. Failures are *IOError.
func (r *Regex) WriteDOTFile(path string) error { return dot.ExportNFA(path, r.nfa) }

// WriteDFAFile exports the determinized automaton to path.
func (r *Regex) WriteDFAFile(path string) error { return dot.ExportDFA(path, r.DFA()) }
