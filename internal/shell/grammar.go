package shell

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one line of the command language:
//
//	exp <pattern> | match <input> | dot <file> | dfa <file> | print | help | end
type Command struct {
	Exp    *Expression `parser:"  @@"`
	Match  *Input      `parser:"| @@"`
	Export *Export     `parser:"| @@"`
	Print  bool        `parser:"| @'print'"`
	Help   bool        `parser:"| @'help'"`
	End    bool        `parser:"| @('end' | 'quit' | 'exit')"`
}

type Expression struct {
	Keyword string   `parser:"@'exp'"`
	Parts   []string `parser:"@Arg*"`
}

type Input struct {
	Keyword string   `parser:"@'match'"`
	Parts   []string `parser:"@Arg*"`
}

type Export struct {
	Kind  string   `parser:"@('dot' | 'dfa')"`
	Paths []string `parser:"@Arg*"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Arg", Pattern: `[^ \t\r]+`},
})

var commandParser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// ParseCommand parses a single non-blank line.
func ParseCommand(line string) (*Command, error) {
	return commandParser.ParseString("", line)
}
