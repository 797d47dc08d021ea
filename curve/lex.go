// Package curve implements a small automation language: a script is a
// sequence of whitespace-separated tokens, each either a bare number (jump
// to that value) or number '/' number (ramp linearly to the first number
// over the second number of seconds). A parsed program is interpreted one
// sample at a time by a Cursor.
package curve

import (
	"fmt"
	"strings"
)

type tokenType int

const (
	typeNumber tokenType = iota
	typeSlash
	typeEOF
)

type token struct {
	typ  tokenType
	pos  int
	text string
}

const eof = -1

func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	return l.lex()
}

type lexer struct {
	input string

	width int
	start int
	pos   int

	tokens []token
	err    error
}

func (l *lexer) lex() ([]token, error) {
	for {
		switch r := l.next(); {
		case r == eof:
			l.yieldToken(typeEOF)
			return l.tokens, l.err
		case l.isNumber(r):
			l.lexNumber()
		case r == '/':
			l.yieldToken(typeSlash)
		case r == ' ':
			l.ignoreSpace()
		default:
			l.invalidChar(r)
		}
		if l.err != nil {
			return l.tokens, l.err
		}
	}
}

func (l *lexer) next() rune {
	if l.pos == len(l.input) {
		l.width = 0
		return eof
	}
	r := rune(l.input[l.pos])
	l.width = 1
	l.pos++
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) yieldToken(t tokenType) {
	l.tokens = append(l.tokens, token{t, l.pos, l.input[l.start:l.pos]})
	l.start = l.pos
	l.width = 0
}

func (l *lexer) invalidChar(r rune) {
	l.err = fmt.Errorf("unexpected character %#U at position %d", r, l.pos)
}

func (l *lexer) ignoreSpace() {
	for l.peek() == ' ' {
		l.next()
	}
	l.start = l.pos
}

func (l *lexer) take(set string) {
	for strings.IndexRune(set, l.next()) >= 0 {
	}
	l.backup()
}

func (l *lexer) accept(set string) bool {
	if strings.IndexRune(set, l.next()) >= 0 {
		return true
	}
	l.backup()
	return false
}

const digits = "0123456789"

// lexNumber assumes the current character starts a number (see isNumber).
func (l *lexer) lexNumber() {
	l.backup()
	l.accept("-")
	l.take(digits)
	if l.accept(".") {
		l.take(digits)
	}

	r := l.peek()
	if r == ' ' || r == '/' || r == eof {
		l.yieldToken(typeNumber)
	} else {
		l.next()
		l.invalidChar(r)
	}
}

func (l *lexer) isNumber(r rune) bool {
	if isDigit(r) {
		return true
	}
	peek := l.peek()
	if r == '-' {
		return isDigit(peek) || peek == '.'
	}
	return r == '.' && isDigit(peek)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
