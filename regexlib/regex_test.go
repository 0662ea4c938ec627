package regexlib

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	require.NoError(t, err, pat)
	return re
}

func TestCompileAndMatch(t *testing.T) {
	re := newRE(t, "a(b|c)*d")
	for _, s := range []string{"ad", "abcd", "abcbcd", "acbd"} {
		require.True(t, re.Match(s), s)
	}
	for _, s := range []string{"", "a", "abc", "abcde", "d"} {
		require.False(t, re.Match(s), s)
	}
	require.Equal(t, "a(b|c)*d", re.String())
}

func TestCompileErrors(t *testing.T) {
	for _, pat := range []string{"a**", "(a|b", "(a|b))*c", "|abc", "abc|", "a(b|)"} {
		re, err := Compile(pat)
		require.Nil(t, re)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, pat)
	}

	_, err := Compile("a.b")
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, '.', lerr.Char)
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() { MustCompile("(") })
	require.NotPanics(t, func() { MustCompile("a") })
}

func TestAutomatonIsACopy(t *testing.T) {
	re := newRE(t, "ab")
	a := re.Automaton()
	a[0].Branch1 = 99
	require.True(t, re.Match("ab"))
	require.NotEqual(t, 99, re.Automaton()[0].Branch1)
}

func TestMatchHandBuilt(t *testing.T) {
	a := Automaton{
		{Source: 0, Symbol: Epsilon, Branch1: 1, Branch2: -1},
		{Source: 1, Symbol: 'a', Branch1: 2, Branch2: -1},
		{Source: 2, Symbol: Epsilon, Branch1: -1, Branch2: -1},
	}
	require.True(t, Match(a, "a"))
	require.False(t, Match(a, "aa"))
}

func TestMatchAll(t *testing.T) {
	re := newRE(t, "(a|b)*c")
	inputs := []string{"c", "ac", "bc", "aabc", "abababc", "", "a", "ab", "abc", "caa"}
	want := []bool{true, true, true, true, true, false, false, false, true, false}
	require.Equal(t, want, re.MatchAll(inputs, 3))
	require.Equal(t, want, re.MatchAll(inputs, 0))
	require.Empty(t, re.MatchAll(nil, 2))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRE(t, "a").Print(&buf))
	require.Equal(t, "0, -, 1, -1\n1, a, 2, -1\n2, -, -1, -1\n", buf.String())
}

func TestExport(t *testing.T) {
	re := newRE(t, "a*b")
	var buf bytes.Buffer
	require.NoError(t, re.ExportDOT(&buf))
	require.True(t, strings.HasPrefix(buf.String(), "digraph Automaton {"))

	dir := t.TempDir()
	require.NoError(t, re.WriteDOTFile(filepath.Join(dir, "nfa.dot")))
	require.NoError(t, re.WriteDFAFile(filepath.Join(dir, "dfa.dot")))

	err := re.WriteDOTFile(filepath.Join(dir, "nope", "nfa.dot"))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestDFAAgreesWithNFA(t *testing.T) {
	re := newRE(t, "(ab|a)*c")
	d := re.DFA()
	for _, s := range []string{"", "c", "abc", "aac", "abac", "abbc", "ca"} {
		require.Equal(t, re.Match(s), d.Match(s), s)
	}
	require.Greater(t, re.States(), len(d.States))
}

func BenchmarkLongInput(b *testing.B) {
	re := MustCompile("(a|b)*c")
	txt := strings.Repeat("ab", 50_000) + "c"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.Match(txt)
	}
}
