package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// Minimize merges equivalent states by partition refinement. Missing
// transitions count as going to an implicit dead state, so the result is
// still partial. All states of a DFA built by FromNFA are reachable, which
// this relies on.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.States) == 0 {
		return d
	}

	n := len(d.States)
	class := make([]int, n)
	for i, s := range d.States {
		if s.Accept != d.States[d.Start].Accept {
			class[i] = 1
		}
	}
	count := distinct(class)

	for {
		sigs := map[string]int{}
		next := make([]int, n)
		for i, s := range d.States {
			var b strings.Builder
			fmt.Fprint(&b, class[i])
			for _, c := range d.Alpha {
				to, ok := s.Trans[c]
				if !ok {
					b.WriteString(",-")
					continue
				}
				fmt.Fprintf(&b, ",%d", class[to])
			}
			sig := b.String()
			id, ok := sigs[sig]
			if !ok {
				id = len(sigs)
				sigs[sig] = id
			}
			next[i] = id
		}
		class = next
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}

	states := make([]*State, count)
	for i, s := range d.States {
		c := class[i]
		if states[c] == nil {
			states[c] = &State{ID: c, Accept: s.Accept, Trans: map[byte]int{}}
		}
		states[c].NFA = append(states[c].NFA, s.NFA...)
		for sym, to := range s.Trans {
			states[c].Trans[sym] = class[to]
		}
	}
	for _, s := range states {
		s.NFA = dedupe(s.NFA)
	}
	return &DFA{Start: class[d.Start], States: states, Alpha: d.Alpha}
}

func distinct(xs []int) int {
	seen := map[int]struct{}{}
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}

func dedupe(ids []int) []int {
	sort.Ints(ids)
	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			out = append(out, id)
		}
	}
	return out
}
