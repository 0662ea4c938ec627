// Package dfa determinizes a transition table by subset construction.
package dfa

import (
	"fmt"

	"patternrec/internal/automaton"
	"patternrec/internal/matcher"
)

type State struct {
	ID     int
	Accept bool
	Trans  map[byte]int
	NFA    []int // the NFA states this state stands for, ascending
}

// DFA has no dead state: a missing transition rejects.
type DFA struct {
	Start  int
	States []*State
	Alpha  []byte
}

func key(set matcher.StateSet) string { return fmt.Sprint(set.Sorted()) }

// FromNFA builds the DFA equivalent of a. An empty table yields a DFA with
// one non-accepting state.
func FromNFA(a automaton.Automaton) *DFA {
	m := matcher.New(a)
	alpha := a.Alphabet()

	var init matcher.StateSet
	if len(a) == 0 {
		init = matcher.StateSet{}
	} else {
		init = m.Start()
	}

	start := &State{ID: 0, Accept: m.Accepts(init), Trans: map[byte]int{}, NFA: init.Sorted()}
	seen := map[string]*State{key(init): start}
	states := []*State{start}
	queue := []matcher.StateSet{init}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := seen[key(cur)]
		for _, c := range alpha {
			next := m.EpsilonClosure(m.Step(cur, c))
			if len(next) == 0 {
				continue
			}
			k := key(next)
			to, ok := seen[k]
			if !ok {
				to = &State{ID: len(states), Accept: m.Accepts(next), Trans: map[byte]int{}, NFA: next.Sorted()}
				seen[k] = to
				states = append(states, to)
				queue = append(queue, next)
			}
			from.Trans[c] = to.ID
		}
	}
	return &DFA{Start: start.ID, States: states, Alpha: alpha}
}

func (d *DFA) Match(input string) bool {
	cur := d.States[d.Start]
	for i := 0; i < len(input); i++ {
		next, ok := cur.Trans[input[i]]
		if !ok {
			return false
		}
		cur = d.States[next]
	}
	return cur.Accept
}
