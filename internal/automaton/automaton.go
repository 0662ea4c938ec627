// Package automaton holds the flat transition-table form of a Thompson NFA.
//
// Node identity is an integer state id. The table is an ordered list of
// Transition records; several records may share the same source state
// (one symbol transition plus epsilon fan-out). A record with the epsilon
// symbol and no branches marks its source as an accept state.
package automaton

import (
	"fmt"
	"io"
	"sort"
)

// Epsilon is the reserved symbol of transitions that consume no input.
const Epsilon byte = '-'

// None marks an absent branch.
const None = -1

// Transition is one row of the table: Source --Symbol--> Branch1 and/or Branch2.
type Transition struct {
	Source  int
	Symbol  byte
	Branch1 int
	Branch2 int
}

// Fragment is the start/accept pair every grammar production returns while
// the table is being built. It never ends up in the table.
type Fragment struct {
	Start  int
	Accept int
}

// Automaton is the transition table. State 0 is the start state.
type Automaton []Transition

func (t Transition) IsEpsilon() bool { return t.Symbol == Epsilon }

// IsAccept reports whether t is the accept sentinel of its source state.
func (t Transition) IsAccept() bool {
	return t.Symbol == Epsilon && t.Branch1 == None && t.Branch2 == None
}

// Targets returns the present branches in order.
func (t Transition) Targets() []int {
	out := make([]int, 0, 2)
	if t.Branch1 != None {
		out = append(out, t.Branch1)
	}
	if t.Branch2 != None {
		out = append(out, t.Branch2)
	}
	return out
}

func (t Transition) String() string {
	return fmt.Sprintf("%d, %c, %d, %d", t.Source, t.Symbol, t.Branch1, t.Branch2)
}

// Accept returns the terminal marker record for state s.
func Accept(s int) Transition {
	return Transition{Source: s, Symbol: Epsilon, Branch1: None, Branch2: None}
}

// Clone returns an independent copy of the table.
func (a Automaton) Clone() Automaton {
	if a == nil {
		return nil
	}
	out := make(Automaton, len(a))
	copy(out, a)
	return out
}

// AcceptStates returns the distinct accept states in table order.
func (a Automaton) AcceptStates() []int {
	seen := map[int]bool{}
	var out []int
	for _, t := range a {
		if t.IsAccept() && !seen[t.Source] {
			seen[t.Source] = true
			out = append(out, t.Source)
		}
	}
	return out
}

// Alphabet returns the sorted set of non-epsilon symbols used by the table.
func (a Automaton) Alphabet() []byte {
	set := map[byte]struct{}{}
	for _, t := range a {
		if !t.IsEpsilon() {
			set[t.Symbol] = struct{}{}
		}
	}
	out := make([]byte, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// States returns every state id mentioned by the table, ascending.
func (a Automaton) States() []int {
	set := map[int]struct{}{}
	for _, t := range a {
		set[t.Source] = struct{}{}
		for _, b := range t.Targets() {
			set[b] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Print writes one line per record in the form "source, symbol, branch1, branch2".
func Print(w io.Writer, a Automaton) error {
	for _, t := range a {
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}
