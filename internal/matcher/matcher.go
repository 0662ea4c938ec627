// Package matcher simulates a transition table on input strings by tracking
// the set of reachable states.
package matcher

import (
	"sort"

	"patternrec/internal/automaton"
)

// StateSet is a set of state ids.
type StateSet map[int]struct{}

func NewStateSet(states ...int) StateSet {
	s := make(StateSet, len(states))
	for _, id := range states {
		s[id] = struct{}{}
	}
	return s
}

func (s StateSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Matcher runs an automaton. It keeps its own copy of the table sorted by
// source state and never mutates it, so one Matcher may be shared across
// goroutines.
type Matcher struct {
	table  automaton.Automaton
	accept StateSet
}

func New(a automaton.Automaton) *Matcher {
	m := &Matcher{table: automaton.SortedBySource(a), accept: StateSet{}}
	for _, s := range a.AcceptStates() {
		m.accept[s] = struct{}{}
	}
	return m
}

// EpsilonClosure returns states plus everything reachable from them through
// epsilon transitions. The argument is not modified.
func (m *Matcher) EpsilonClosure(states StateSet) StateSet {
	closure := make(StateSet, len(states))
	stack := make([]int, 0, len(states))
	for s := range states {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range automaton.Outgoing(m.table, s) {
			if !t.IsEpsilon() {
				continue
			}
			for _, to := range t.Targets() {
				if !closure.Has(to) {
					closure[to] = struct{}{}
					stack = append(stack, to)
				}
			}
		}
	}
	return closure
}

// Step returns the states reached from states by consuming c, before closure.
// The epsilon marker never matches a real character.
func (m *Matcher) Step(states StateSet, c byte) StateSet {
	next := StateSet{}
	for s := range states {
		for _, t := range automaton.Outgoing(m.table, s) {
			if t.IsEpsilon() || t.Symbol != c {
				continue
			}
			for _, to := range t.Targets() {
				next[to] = struct{}{}
			}
		}
	}
	return next
}

func (m *Matcher) Accepts(states StateSet) bool {
	for s := range states {
		if m.accept.Has(s) {
			return true
		}
	}
	return false
}

// Start returns the epsilon closure of state 0.
func (m *Matcher) Start() StateSet {
	return m.EpsilonClosure(NewStateSet(0))
}

// Match reports whether input is in the language of the automaton.
func (m *Matcher) Match(input string) bool {
	if len(m.table) == 0 {
		return false
	}

	current := m.Start()
	for i := 0; i < len(input); i++ {
		next := m.EpsilonClosure(m.Step(current, input[i]))
		if len(next) == 0 {
			return false
		}
		current = next
	}
	return m.Accepts(current)
}

// Match is a one-off convenience for New(a).Match(input).
func Match(a automaton.Automaton, input string) bool {
	return New(a).Match(input)
}
