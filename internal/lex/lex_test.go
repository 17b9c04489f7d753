package lex_test

import (
	"testing"
	"unicode"

	"github.com/db47h/pulsesim/internal/lex"
)

const (
	tWord lex.Type = iota
	tSym
)

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r):
		l.AcceptWhile(unicode.IsLetter)
		l.Emit(tWord, "w")
	default:
		l.Emit(tSym, r)
	}
	return nil
}

func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, nil)
	return lexEOF
}

func TestLexer(t *testing.T) {
	l := lex.New("ab  c,dé", lexInit)
	exp := []struct {
		typ lex.Type
		pos lex.Pos
	}{
		{tWord, 0},
		{tWord, 4},
		{tSym, 5},
		{tWord, 6},
		{lex.EOF, 9},
		{lex.EOF, 9},
	}
	for i, e := range exp {
		it := l.Lex()
		if it.Type != e.typ || it.Pos != e.pos {
			t.Fatalf("item %d: got type %d pos %d, expected type %d pos %d", i, it.Type, it.Pos, e.typ, e.pos)
		}
	}
}

func TestLexer_backup(t *testing.T) {
	l := lex.New("x", nil)
	if r := l.Next(); r != 'x' {
		t.Fatalf("got %q", r)
	}
	l.Backup()
	l.Backup() // no-op
	if r := l.Next(); r != 'x' {
		t.Fatalf("got %q after backup", r)
	}
	if r := l.Next(); r != lex.EOF {
		t.Fatalf("got %q, expected EOF", r)
	}
	if l.Current() != lex.EOF {
		t.Fatalf("Current() = %q, expected EOF", l.Current())
	}
}
