package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"patternrec/regexlib"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("whatever"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PATTERNREC_TEST_KEY", "x")
	require.Equal(t, "x", getEnv("PATTERNREC_TEST_KEY", "y"))
	require.Equal(t, "y", getEnv("PATTERNREC_TEST_UNSET", "y"))
}

func TestExportToFile(t *testing.T) {
	re := regexlib.MustCompile("a|b")
	dir := t.TempDir()

	nfaPath := filepath.Join(dir, "nfa.dot")
	require.NoError(t, export(re, nfaPath, false, false))
	got, err := os.ReadFile(nfaPath)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, re.ExportDOT(&want))
	require.Equal(t, want.String(), string(got))

	dfaPath := filepath.Join(dir, "dfa.dot")
	require.NoError(t, export(re, dfaPath, true, false))
	got, err = os.ReadFile(dfaPath)
	require.NoError(t, err)
	require.Contains(t, string(got), "digraph DFA {")

	err = export(re, filepath.Join(dir, "no", "such.dot"), false, false)
	var ioErr *regexlib.IOError
	require.ErrorAs(t, err, &ioErr)
}
