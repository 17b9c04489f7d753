// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a small state function based lexer engine.
//
// A lexer is driven by StateFn's. Each state function consumes runes with
// Next, emits zero or more items with Emit and returns the next state. When a
// state returns nil, the lexer restarts from its initial state at the current
// input position.
//
package lex

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Next when the end of input is reached. It is also the
// Type of the item emitted at end of input.
//
const EOF = -1

// Type is an item type. Negative values are reserved.
//
type Type int

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	if i.Type == EOF {
		return "end of input"
	}
	switch v := i.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case rune:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(i.Value)
}

// Interface is implemented by lexers.
//
type Interface interface {
	// Lex returns the next item in the input stream.
	Lex() Item
}

// A StateFn is a lexer state.
//
type StateFn func(l *Lexer) StateFn

// Lexer is the lexer engine.
//
type Lexer struct {
	input string
	pos   int // offset of the next rune
	start int // offset of the current token
	width int // width of the last rune read
	cur   rune
	init  StateFn
	state StateFn
	items []Item
}

// New returns a new lexer over input, starting in state init.
//
func New(input string, init StateFn) *Lexer {
	return &Lexer{input: input, init: init}
}

// Lex implements Interface.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.start = l.pos
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next consumes and returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		l.cur = EOF
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	l.cur = r
	return r
}

// Backup steps back one rune. It can only be called once per call to Next.
//
func (l *Lexer) Backup() {
	l.pos -= l.width
	l.width = 0
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// AcceptWhile consumes runes as long as f returns true.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	for f(l.Next()) {
	}
	l.Backup()
}

// Emit emits an item of type t with value v, positioned at the start of the
// current token.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: Pos(l.start), Value: v})
	l.start = l.pos
}
