package automaton

import "sort"

// SortBy sorts the table in place with a stable comparator.
func SortBy(a Automaton, less func(x, y Transition) bool) {
	sort.SliceStable(a, func(i, j int) bool { return less(a[i], a[j]) })
}

// BySource orders records by source state.
func BySource(x, y Transition) bool { return x.Source < y.Source }

// FindBy returns the index of the first record satisfying match, or -1.
func FindBy(a Automaton, match func(Transition) bool) int {
	for i, t := range a {
		if match(t) {
			return i
		}
	}
	return -1
}

// SortedBySource returns a copy of a ordered by source state. The input is
// left untouched.
func SortedBySource(a Automaton) Automaton {
	out := a.Clone()
	SortBy(out, BySource)
	return out
}

// Outgoing returns the records of source s from a table sorted by source.
// The returned slice aliases a.
func Outgoing(sorted Automaton, s int) Automaton {
	lo := sort.Search(len(sorted), func(i int) bool { return sorted[i].Source >= s })
	hi := lo
	for hi < len(sorted) && sorted[hi].Source == s {
		hi++
	}
	return sorted[lo:hi]
}
