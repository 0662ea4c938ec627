package dfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"patternrec/internal/matcher"
	"patternrec/internal/parser"
)

// all words over alpha of length <= n
func words(alpha string, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range frontier {
			for j := 0; j < len(alpha); j++ {
				next = append(next, w+alpha[j:j+1])
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestEquivalentToNFA(t *testing.T) {
	for _, pattern := range []string{"a", "a|b", "ab", "a*", "(ab|a)*c", "a(b|c)*", "(a|b)*abb", "((a|b)*)*c"} {
		a, err := parser.Compile(pattern)
		require.NoError(t, err)
		d := FromNFA(a)
		for _, w := range words("abc", 4) {
			require.Equal(t, matcher.Match(a, w), d.Match(w), "%s on %q", pattern, w)
		}
	}
}

func TestSubsetStates(t *testing.T) {
	a, err := parser.Compile("a|b")
	require.NoError(t, err)
	d := FromNFA(a)

	require.Equal(t, []byte("ab"), d.Alpha)
	require.Len(t, d.States, 3)
	start := d.States[d.Start]
	require.False(t, start.Accept)
	require.Equal(t, []int{0, 1, 3}, start.NFA)
	for _, c := range []byte("ab") {
		require.True(t, d.States[start.Trans[c]].Accept)
	}
}

func TestEmptyTable(t *testing.T) {
	d := FromNFA(nil)
	require.Len(t, d.States, 1)
	require.False(t, d.Match(""))
	require.False(t, d.Match("a"))
}

func TestMinimize(t *testing.T) {
	a, err := parser.Compile("(a|b)*")
	require.NoError(t, err)
	raw := FromNFA(a)
	require.Greater(t, len(raw.States), 1)

	min := Minimize(raw)
	require.Len(t, min.States, 1)
	only := min.States[min.Start]
	require.True(t, only.Accept)
	require.Equal(t, map[byte]int{'a': 0, 'b': 0}, only.Trans)
}

func TestMinimizeMergesEquivalentAcceptStates(t *testing.T) {
	a, err := parser.Compile("a|b")
	require.NoError(t, err)
	min := Minimize(FromNFA(a))
	require.Len(t, min.States, 2)
	require.False(t, min.States[min.Start].Accept)
}

func TestMinimizePreservesLanguage(t *testing.T) {
	for _, pattern := range []string{"a|ab", "(ab|a)*c", "(a|b)*abb", "a*b*", "(a*b*)*c", "abc|abd"} {
		a, err := parser.Compile(pattern)
		require.NoError(t, err)
		raw := FromNFA(a)
		min := Minimize(raw)
		require.LessOrEqual(t, len(min.States), len(raw.States), pattern)
		for _, w := range words("abcd", 4) {
			require.Equal(t, raw.Match(w), min.Match(w), "%s on %q", pattern, w)
		}
	}
	require.Nil(t, Minimize(nil))
}
