package lexer

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Kind int

const (
	Letter     Kind = iota // a..z
	Or                     // |
	Star                   // *
	OpenParen              // (
	CloseParen             // )
	EndOfInput
)

func (k Kind) String() string {
	switch k {
	case Letter:
		return "Letter"
	case Or:
		return "Or"
	case Star:
		return "Star"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case EndOfInput:
		return "EndOfInput"
	}
	return "Unknown"
}

// Token is one lexeme of a pattern. Value is set for letters only. Offset is
// the byte offset in the pattern (its length for EndOfInput).
type Token struct {
	Kind   Kind
	Value  byte
	Offset int
}

func (t Token) String() string {
	if t.Kind == Letter {
		return fmt.Sprintf("%s(%c)", t.Kind, t.Value)
	}
	return t.Kind.String()
}

// Error reports a character outside the pattern alphabet.
type Error struct {
	Char   rune
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

var (
	once     sync.Once
	rules    *lexmachine.Lexer
	rulesErr error
)

func compiled() (*lexmachine.Lexer, error) {
	once.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[ \t\n\r]+`), skip)
		l.Add([]byte(`[a-z]`), tokAction(Letter))
		l.Add([]byte(`[|]`), tokAction(Or))
		l.Add([]byte(`[*]`), tokAction(Star))
		l.Add([]byte(`[(]`), tokAction(OpenParen))
		l.Add([]byte(`[)]`), tokAction(CloseParen))
		if err := l.Compile(); err != nil {
			rulesErr = err
			return
		}
		rules = l
	})
	return rules, rulesErr
}

// Tokenize splits pattern into tokens, always ending with EndOfInput.
// Whitespace is skipped; any other character outside a-z|*() aborts with *Error.
func Tokenize(pattern string) ([]Token, error) {
	l, err := compiled()
	if err != nil {
		return nil, err
	}
	input := []byte(pattern)
	scanner, err := l.Scanner(input)
	if err != nil {
		return nil, err
	}

	var out []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, unconsumed(input, err)
		}
		out = append(out, tok.(Token))
	}
	out = append(out, Token{Kind: EndOfInput, Offset: len(input)})
	return out, nil
}

func unconsumed(input []byte, err error) error {
	var ui *machines.UnconsumedInput
	if !errors.As(err, &ui) || ui.StartTC >= len(input) {
		return err
	}
	r, _ := utf8.DecodeRune(input[ui.StartTC:])
	return &Error{Char: r, Offset: ui.StartTC}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tok := Token{Kind: kind, Offset: m.TC}
		if kind == Letter {
			tok.Value = m.Bytes[0]
		}
		return tok, nil
	}
}
