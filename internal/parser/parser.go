// Package parser builds the transition table of a pattern with Thompson's
// construction while parsing it by recursive descent:
//
//	expr   ::= term ('|' term)*
//	term   ::= factor factor*
//	factor ::= (letter | '(' expr ')') ['*']
package parser

import (
	"fmt"

	"patternrec/internal/automaton"
	"patternrec/internal/lexer"
)

// Error is a grammar violation. Pos is the index of the offending token,
// Offset its byte offset in the pattern.
type Error struct {
	Msg    string
	Pos    int
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

type parser struct {
	tokens []lexer.Token
	pos    int
	next   int // state-id counter, 0 is reserved for the start state
	table  automaton.Automaton
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens, next: 1}
}

// Parse builds the automaton for an already tokenized pattern.
func Parse(tokens []lexer.Token) (automaton.Automaton, error) {
	return newParser(tokens).parse()
}

// Compile tokenizes and parses pattern. Errors are *lexer.Error or *Error.
func Compile(pattern string) (automaton.Automaton, error) {
	tokens, err := lexer.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) look() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Kind: lexer.EndOfInput}
}

func (p *parser) scan() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *parser) newState() int { p.next++; return p.next - 1 }

func (p *parser) emit(src int, sym byte, b1, b2 int) {
	p.table = append(p.table, automaton.Transition{Source: src, Symbol: sym, Branch1: b1, Branch2: b2})
}

func (p *parser) errorf(format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: p.pos, Offset: p.look().Offset}
}

func (p *parser) parse() (automaton.Automaton, error) {
	frag, err := p.parseExpr(true)
	if err != nil {
		return nil, err
	}

	if frag.Start != 0 {
		bridge := automaton.Transition{Source: 0, Symbol: automaton.Epsilon, Branch1: frag.Start, Branch2: automaton.None}
		p.table = append(automaton.Automaton{bridge}, p.table...)
		frag.Start = 0
	}

	if k := p.look().Kind; k != lexer.EndOfInput {
		return nil, p.errorf("unexpected trailing input %s", k)
	}

	p.table = append(p.table, automaton.Accept(frag.Accept))
	return p.table, nil
}

func (p *parser) parseExpr(top bool) (automaton.Fragment, error) {
	left, err := p.parseTerm()
	if err != nil {
		return left, err
	}

	for p.look().Kind == lexer.Or {
		p.scan()
		right, err := p.parseTerm()
		if err != nil {
			return right, err
		}

		start := 0
		if !top {
			start = p.newState()
		}
		accept := p.newState()

		p.emit(start, automaton.Epsilon, left.Start, right.Start)
		p.emit(left.Accept, automaton.Epsilon, accept, automaton.None)
		p.emit(right.Accept, automaton.Epsilon, accept, automaton.None)

		left = automaton.Fragment{Start: start, Accept: accept}
	}
	return left, nil
}

func (p *parser) parseTerm() (automaton.Fragment, error) {
	left, err := p.parseFactor()
	if err != nil {
		return left, err
	}

	for k := p.look().Kind; k == lexer.Letter || k == lexer.OpenParen; k = p.look().Kind {
		right, err := p.parseFactor()
		if err != nil {
			return right, err
		}
		p.emit(left.Accept, automaton.Epsilon, right.Start, automaton.None)
		left.Accept = right.Accept
	}
	return left, nil
}

func (p *parser) parseFactor() (automaton.Fragment, error) {
	var base automaton.Fragment

	switch tok := p.look(); tok.Kind {
	case lexer.Letter:
		base = p.parseLetter(tok.Value)
	case lexer.OpenParen:
		p.scan()
		inner, err := p.parseExpr(false)
		if err != nil {
			return inner, err
		}
		if k := p.look().Kind; k != lexer.CloseParen {
			return inner, p.errorf("expected ')' but found %s", k)
		}
		p.scan()
		base = inner
	default:
		return base, p.errorf("expected a letter or '(' but found %s", tok.Kind)
	}

	if p.look().Kind != lexer.Star {
		return base, nil
	}
	p.scan()

	start := p.newState()
	accept := p.newState()
	p.emit(start, automaton.Epsilon, base.Start, accept)
	p.emit(base.Accept, automaton.Epsilon, base.Start, accept)
	return automaton.Fragment{Start: start, Accept: accept}, nil
}

func (p *parser) parseLetter(c byte) automaton.Fragment {
	start := p.newState()
	accept := p.newState()
	p.emit(start, c, accept, automaton.None)
	p.scan()
	return automaton.Fragment{Start: start, Accept: accept}
}
