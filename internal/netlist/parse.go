// Package netlist lexes and parses circuit declarations of the form
//
//	[%|&]name -> receiver, receiver, ...
//
package netlist

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/db47h/pulsesim/internal/lex"
	"github.com/pkg/errors"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Percent
	Ampersand
	Arrow
	Comma
)

// Lexer returns a new lexer for a single declaration line.
//
func Lexer(input string) lex.Interface {
	return lex.New(input, lexInit)
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case isIdent(r):
		return lexIdent
	case r == '%':
		l.Emit(Percent, "%")
	case r == '&':
		l.Emit(Ampersand, "&")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow, "->")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdent(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}

// Decl is a parsed module declaration.
//
type Decl struct {
	Prefix    rune // 0, '%' or '&'
	Name      string
	Pos       lex.Pos // position of Name
	Receivers []string
}

// SyntaxError reports a malformed declaration.
//
type SyntaxError struct {
	Input string
	Pos   lex.Pos
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("in %q at pos %d: %s", e.Input, e.Pos+1, e.Msg)
}

func syntaxError(in string, pos lex.Pos, msg string) error {
	return errors.WithStack(&SyntaxError{Input: in, Pos: pos, Msg: msg})
}

// Parse parses a single declaration line.
//
func Parse(input string) (*Decl, error) {
	l := Lexer(input)
	d := new(Decl)

	i := l.Lex()
	switch i.Type {
	case Percent:
		d.Prefix = '%'
		i = l.Lex()
	case Ampersand:
		d.Prefix = '&'
		i = l.Lex()
	}
	if i.Type != Ident {
		return nil, syntaxError(input, i.Pos, "expected module name, got "+i.String())
	}
	d.Name, d.Pos = i.Value.(string), i.Pos

	i = l.Lex()
	if i.Type != Arrow {
		return nil, syntaxError(input, i.Pos, "expected '->', got "+i.String())
	}
	for {
		i = l.Lex()
		if i.Type != Ident {
			return nil, syntaxError(input, i.Pos, "expected receiver name, got "+i.String())
		}
		d.Receivers = append(d.Receivers, i.Value.(string))
		// after a receiver, expect comma or EOF
		i = l.Lex()
		switch i.Type {
		case EOF:
			return d, nil
		case Comma:
			continue
		}
		return nil, syntaxError(input, i.Pos, "expected comma or end of input, got "+i.String())
	}
}
