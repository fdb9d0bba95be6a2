// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl parses sensitivity expressions.
//
// The accepted syntax is a Verilog style event list, optionally wrapped in
// @( ... ). Items are separated by "or" or commas:
//
//	@(posedge clk or negedge rst_n)
//	posedge clk, [changed] en
//	*
//	@*
//
// A bare signal name is level sensitive ([changed]).
//
package hdl

import (
	"fmt"

	"github.com/db47h/hwsched/sense"
	"github.com/pkg/errors"
)

// Parser is a simplistic recursive descent parser for sensitivity
// expressions.
//
type Parser struct {
	Input string
	l     *Lexer
	i     Item
}

// Parse parses a sensitivity expression into a list of items, in source
// order.
//
func Parse(input string) ([]sense.Item, error) {
	p := &Parser{Input: input}
	return p.Parse()
}

// Parse parses p.Input.
//
func (p *Parser) Parse() ([]sense.Item, error) {
	p.l = NewLexer(p.Input)
	p.next()

	if p.i.Type == EOF {
		return nil, p.errorf("empty sensitivity list")
	}
	if p.i.Type == At {
		p.next()
		if p.i.Type == Star {
			p.next()
			if p.i.Type != EOF {
				return nil, p.unexpected()
			}
			return []sense.Item{{Edge: sense.Combo}}, nil
		}
		if p.i.Type != ParenOpen {
			return nil, p.errorf("'(' or '*' expected after '@'")
		}
	}
	paren := p.i.Type == ParenOpen
	if paren {
		p.next()
	}

	var out []sense.Item
	for {
		it, err := p.item()
		if err != nil {
			return nil, err
		}
		out = append(out, it)
		if p.i.Type == Comma || (p.i.Type == Ident && p.i.Value == "or") {
			p.next()
			continue
		}
		break
	}

	if paren {
		if p.i.Type != ParenClose {
			return nil, p.errorf("closing ')' expected")
		}
		p.next()
	}
	if p.i.Type != EOF {
		return nil, p.unexpected()
	}
	return out, nil
}

func (p *Parser) item() (sense.Item, error) {
	switch p.i.Type {
	case Star:
		p.next()
		return sense.Item{Edge: sense.Combo}, nil
	case Keyword, Ident:
	default:
		return sense.Item{}, p.errorf("expected sensitivity item, got %s", p.i)
	}

	e, ok := sense.ParseEdge(p.i.Value)
	if !ok {
		if p.i.Type == Keyword {
			return sense.Item{}, p.errorf("unknown edge keyword %s", p.i.Value)
		}
		// bare signal
		it := sense.Item{Edge: sense.Changed, Signal: p.i.Value}
		p.next()
		return it, nil
	}
	p.next()
	if !e.HasSignal() {
		return sense.Item{Edge: e}, nil
	}
	if p.i.Type != Ident || p.i.Value == "or" {
		return sense.Item{}, p.errorf("signal name expected after %s", e)
	}
	it := sense.Item{Edge: e, Signal: p.i.Value}
	p.next()
	return it, nil
}

func (p *Parser) next() {
	p.i = p.l.Lex()
}

func (p *Parser) unexpected() error {
	return p.errorf("unexpected %s", p.i)
}

// errorf reports an error at the current token. Lexical errors take
// precedence over the parser's message.
//
func (p *Parser) errorf(format string, args ...interface{}) error {
	msg := p.i.Value
	if p.i.Type != Error {
		msg = fmt.Sprintf(format, args...)
	}
	return errors.Errorf("in %q at pos %d: %s", p.Input, p.i.Pos+1, msg)
}
