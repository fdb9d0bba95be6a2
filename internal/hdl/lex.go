// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	Keyword // bracketed keyword like [changed]
	At
	ParenOpen
	ParenClose
	Comma
	Star
	Error // lexical error, Value holds the message
)

var typeNames = [...]string{
	EOF:        "end of input",
	Raw:        "character",
	Ident:      "identifier",
	Keyword:    "keyword",
	At:         "'@'",
	ParenOpen:  "'('",
	ParenClose: "')'",
	Comma:      "','",
	Star:       "'*'",
	Error:      "error",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "token"
}

// Pos is a byte offset in the input.
//
type Pos int

// An Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value string
}

func (i Item) String() string {
	switch i.Type {
	case EOF:
		return i.Type.String()
	case Raw:
		return "character " + i.Value
	}
	return i.Type.String() + " " + i.Value
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

const eof = -1

// Lexer splits a sensitivity expression into tokens.
//
type Lexer struct {
	input string
	pos   int // position of next rune
	start int // start of current token
	cur   rune
	width int
	state StateFn
	items []Item
}

// NewLexer returns a new lexer for the given sensitivity expression.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next token.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		st := l.state(l)
		if st == nil {
			st = lexInit
		}
		l.state = st
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input.
//
func (l *Lexer) Next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		l.cur = eof
		return eof
	}
	l.cur, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return l.cur
}

// Backup steps back one rune. It can only be called once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= l.width
	l.width = 0
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune { return l.cur }

// Emit emits a token of type t starting at the current token start.
//
func (l *Lexer) Emit(t Type, v string) {
	l.items = append(l.items, Item{Type: t, Pos: Pos(l.start), Value: v})
}

// AcceptWhile consumes runes while f returns true.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for r := l.Next(); r != eof && f(r); r = l.Next() {
	}
	if l.cur != eof {
		l.Backup()
	}
}

func lexInit(l *Lexer) StateFn {
	l.start = l.pos
	r := l.Next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case isIdentStart(r):
		return lexIdent
	case r == '[':
		return lexKeyword
	case r == '@':
		l.Emit(At, "@")
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '*':
		l.Emit(Star, "*")
	default:
		l.Emit(Raw, string(r))
		return lexEOF
	}
	return nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '\\'
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.'
}

func lexIdent(l *Lexer) StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdent(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	// bit or word select: sig[3]
	if r == '[' {
		open := l.pos - l.width
		buf.WriteRune(r)
		for r = l.Next(); '0' <= r && r <= '9'; r = l.Next() {
			buf.WriteRune(r)
		}
		if r != ']' {
			l.start = open
			l.Emit(Error, "']' expected to close select "+buf.String())
			return lexEOF
		}
		buf.WriteRune(r)
		r = l.Next()
	}
	if r != eof {
		l.Backup()
	}
	l.Emit(Ident, buf.String())
	return nil
}

func lexKeyword(l *Lexer) StateFn {
	var buf strings.Builder
	buf.WriteRune('[')
	r := l.Next()
	for unicode.IsLetter(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	if r != ']' {
		l.Emit(Raw, "[")
		return lexEOF
	}
	buf.WriteRune(']')
	l.Emit(Keyword, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) StateFn {
	l.start = l.pos
	l.Emit(EOF, "")
	return lexEOF
}
