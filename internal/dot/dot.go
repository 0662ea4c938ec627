package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	"patternrec/internal/automaton"
	"patternrec/internal/dfa"
)

// EpsilonLabel is how epsilon edges are labelled.
const EpsilonLabel = "&epsilon;"

// IOError means the export destination could not be opened or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to write file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func label(sym byte) string {
	if sym == automaton.Epsilon {
		return EpsilonLabel
	}
	return string(sym)
}

type edge struct {
	from, to int
	label    string
}

// WriteNFA prints the Graphviz form of a transition table: accept states as
// doublecircles, one line per edge, and a point node wired to state 0.
// Every node and edge appears once.
func WriteNFA(w io.Writer, a automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph Automaton {")
	fmt.Fprintln(bw, "  rankdir=LR;")
	fmt.Fprintln(bw, "  node [shape = circle];")

	for _, s := range a.AcceptStates() {
		fmt.Fprintf(bw, "  %d [shape=doublecircle];\n", s)
	}

	seen := map[edge]bool{}
	for _, t := range a {
		for _, to := range t.Targets() {
			e := edge{t.Source, to, label(t.Symbol)}
			if seen[e] {
				continue
			}
			seen[e] = true
			fmt.Fprintf(bw, "  %d -> %d [label=\"%s\"];\n", e.from, e.to, e.label)
		}
	}

	if automaton.FindBy(a, func(t automaton.Transition) bool { return t.Source == 0 }) >= 0 {
		fmt.Fprintln(bw, "  start [shape=point];")
		fmt.Fprintln(bw, "  start -> 0;")
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteDFA prints the Graphviz form of a determinized automaton.
func WriteDFA(w io.Writer, d *dfa.DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph DFA {")
	fmt.Fprintln(bw, "  rankdir=LR;")

	for _, s := range d.States {
		shape := "circle"
		if s.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "  q%d [shape=%s];\n", s.ID, shape)

		syms := make([]byte, 0, len(s.Trans))
		for c := range s.Trans {
			syms = append(syms, c)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		for _, c := range syms {
			fmt.Fprintf(bw, "  q%d -> q%d [label=\"%c\"];\n", s.ID, s.Trans[c], c)
		}
	}
	fmt.Fprintf(bw, "  start [shape=point];\n  start -> q%d;\n", d.Start)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteFile creates path and renders into it. Any failure is an *IOError;
// a partially written file may be left behind.
func WriteFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: errors.WithStack(err)}
	}
	if err := render(f); err != nil {
		f.Close()
		return &IOError{Path: path, Err: errors.Wrap(err, "render")}
	}
	if err := f.Close(); err != nil {
		return &IOError{Path: path, Err: errors.Wrap(err, "close")}
	}
	return nil
}

// ExportNFA writes the Graphviz form of a to path.
func ExportNFA(path string, a automaton.Automaton) error {
	return WriteFile(path, func(w io.Writer) error { return WriteNFA(w, a) })
}

// ExportDFA writes the Graphviz form of d to path.
func ExportDFA(path string, d *dfa.DFA) error {
	return WriteFile(path, func(w io.Writer) error { return WriteDFA(w, d) })
}
