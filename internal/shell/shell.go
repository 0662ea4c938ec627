// Package shell runs the line-oriented command language used to compile a
// pattern, match strings against it and export its automaton.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"patternrec/regexlib"
)

// EmptyInput is how the empty string is written as a match argument.
const EmptyInput = "-"

const helpText = `Commands:
  exp <pattern>   compile a pattern (letters a-z, '|', '*', '(', ')', no spaces)
  match <input>   test input against the current pattern ('-' is the empty string)
  dot <file>      write the NFA as a Graphviz file
  dfa <file>      write the determinized automaton as a Graphviz file
  print           print the transition table
  help            show this text
  end             quit`

type Shell struct {
	out         io.Writer
	interactive bool
	log         *slog.Logger

	re *regexlib.Regex
}

// New returns a shell writing to out. Prompts and confirmations are only
// printed in interactive mode.
func New(out io.Writer, interactive bool, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{out: out, interactive: interactive, log: logger}
}

// Regex returns the currently loaded pattern, or nil.
func (s *Shell) Regex() *regexlib.Regex { return s.re }

// RunProgram executes commands from in until "end" or EOF.
func RunProgram(in io.Reader, out io.Writer, interactive bool) error {
	return New(out, interactive, nil).Run(in)
}

func (s *Shell) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		s.prompt()
		if !sc.Scan() {
			break
		}
		if done := s.Exec(sc.Text()); done {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read commands")
	}
	return nil
}

func (s *Shell) prompt() {
	if s.interactive {
		fmt.Fprint(s.out, "> ")
	}
}

func (s *Shell) println(args ...interface{}) { fmt.Fprintln(s.out, args...) }

func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, "Error: "+format+"\n", args...)
}

// Exec runs one line and reports whether the session is over.
func (s *Shell) Exec(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		s.log.Debug("unparsable command", "line", line, "err", err)
		s.errorf("unknown command %q (type help)", strings.TrimSpace(line))
		return false
	}

	switch {
	case cmd.Exp != nil:
		s.compile(cmd.Exp.Parts)
	case cmd.Match != nil:
		s.match(cmd.Match.Parts)
	case cmd.Export != nil:
		s.export(cmd.Export.Kind, cmd.Export.Paths)
	case cmd.Print:
		if s.loaded() {
			if err := s.re.Print(s.out); err != nil {
				s.errorf("%v", err)
			}
		}
	case cmd.Help:
		s.println(helpText)
	case cmd.End:
		return true
	}
	return false
}

func (s *Shell) loaded() bool {
	if s.re == nil {
		s.errorf("no expression loaded")
		return false
	}
	return true
}

func (s *Shell) compile(parts []string) {
	s.re = nil
	switch {
	case len(parts) == 0:
		s.errorf("missing expression")
		return
	case len(parts) > 1:
		s.errorf("Expression contains spaces")
		return
	}

	re, err := regexlib.Compile(parts[0])
	if err != nil {
		s.log.Debug("compile failed", "pattern", parts[0], "err", err)
		s.println("Error while tokenizing and parsing:", err)
		return
	}
	s.re = re
	s.log.Debug("compiled", "pattern", parts[0], "states", re.States())
	if s.interactive {
		s.println("Expression loaded")
	}
}

func (s *Shell) match(parts []string) {
	if !s.loaded() {
		return
	}
	switch {
	case len(parts) == 0:
		s.errorf("missing input (use %s for the empty string)", EmptyInput)
		return
	case len(parts) > 1:
		s.errorf("input contains spaces")
		return
	}

	input := parts[0]
	if input == EmptyInput {
		input = ""
	} else if strings.Contains(input, EmptyInput) {
		s.errorf("%q is reserved for the empty string", EmptyInput)
		return
	}

	if s.re.Match(input) {
		s.println("match")
	} else {
		s.println("no match")
	}
}

func (s *Shell) export(kind string, paths []string) {
	if !s.loaded() {
		return
	}
	if len(paths) != 1 {
		s.errorf("expected exactly one file name")
		return
	}

	path := paths[0]
	write := s.re.WriteDOTFile
	if kind == "dfa" {
		write = s.re.WriteDFAFile
	}
	if err := write(path); err != nil {
		s.log.Warn("export failed", "path", path, "err", err)
		s.errorf("%v", errors.Wrapf(err, "export %s", kind))
		return
	}
	if s.interactive {
		s.println("DOT written to", path)
	}
}
