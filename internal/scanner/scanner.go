/*
File   : gsc/internal/scanner/scanner.go
Package: scanner
*/

// Package scanner performs lexical analysis of GSC source text, turning a
// string of characters into a list of token.Token values. It never fails
// catastrophically: on unrecognized input it reports a diagnostic, skips
// the offending character, and keeps going, exactly as a real compiler
// front end must.
package scanner

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/gsc/internal/diagnostics"
	"github.com/akashmaji946/gsc/internal/token"
)

// Scanner tokenizes a single source string. It is single-use: construct
// one with New, call Scan once, and discard it.
type Scanner struct {
	src   string
	diags *diagnostics.Diagnostics

	start   int // start of the lexeme currently being scanned
	current int // index of the next unread byte
	line    int // 1-based line the cursor is currently on
}

// New creates a Scanner over src that reports lexical errors to diags.
func New(src string, diags *diagnostics.Diagnostics) *Scanner {
	return &Scanner{src: src, diags: diags, line: 1}
}

// Scan tokenizes the entire source and returns the resulting tokens. The
// returned slice always ends with exactly one END_OF_FILE token.
func (s *Scanner) Scan() []token.Token {
	var tokens []token.Token
	for !s.atEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	column := s.current - strings.LastIndexByte(s.src[:s.current], '\n')
	tokens = append(tokens, token.New(token.END_OF_FILE, "", nil, s.line, column))
	return tokens
}

// scanToken consumes and classifies the next lexeme. It returns ok=false
// for lexemes that produce no token: whitespace, newlines, and comments.
func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()

	switch c {
	case '(':
		return s.emit(token.LEFT_PAREN), true
	case ')':
		return s.emit(token.RIGHT_PAREN), true
	case '{':
		return s.emit(token.LEFT_BRACE), true
	case '}':
		return s.emit(token.RIGHT_BRACE), true
	case '-':
		return s.emit(token.MINUS), true
	case '+':
		return s.emit(token.PLUS), true
	case ';':
		return s.emit(token.SEMICOLON), true
	case '*':
		return s.emit(token.STAR), true

	case '!':
		if s.match('=') {
			return s.emit(token.BANG_EQUAL), true
		}
		return s.emit(token.BANG), true
	case '=':
		if s.match('=') {
			return s.emit(token.EQUAL_EQUAL), true
		}
		return s.emit(token.EQUAL), true
	case '<':
		if s.match('=') {
			return s.emit(token.LESS_EQUAL), true
		}
		return s.emit(token.LESS), true
	case '>':
		if s.match('=') {
			return s.emit(token.GREATER_EQUAL), true
		}
		return s.emit(token.GREATER), true

	case '/':
		if s.match('/') {
			// Line comment: consume up to but not including the newline.
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
			return token.Token{}, false
		}
		return s.emit(token.SLASH), true

	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false

	case '"':
		return s.scanString()

	default:
		switch {
		case isDigit(c):
			return s.scanNumber(), true
		case isAlpha(c):
			return s.scanIdentifier(), true
		default:
			s.diags.ErrorAt(s.line, "", "Unexpected character.")
			return token.Token{}, false
		}
	}
}

// scanString consumes a string literal already past its opening quote.
// Strings may span multiple lines; each embedded newline advances the
// line counter, and the token carries the line of its opening quote.
// Reaching EOF before the closing quote is a diagnostic and produces no
// token.
func (s *Scanner) scanString() (token.Token, bool) {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.diags.ErrorAt(s.line, "", "Unterminated string.")
		return token.Token{}, false
	}

	s.advance() // the closing "

	value := s.src[s.start+1 : s.current-1]
	tok := s.emitLiteral(token.STRING, value)
	tok.Line = startLine
	return tok, true
}

// scanNumber consumes a run of decimal digits. GSC numbers are integers
// only: no fractional part, no sign (a leading '-' is a unary operator
// handled by the parser, not the scanner).
func (s *Scanner) scanNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Only reachable for literals wider than 64 bits; report and emit 0.
		s.diags.ErrorAt(s.line, "", "Number literal out of range.")
		value = 0
	}
	return s.emitLiteral(token.NUMBER, value)
}

// scanIdentifier consumes an identifier or keyword: [A-Za-z_][A-Za-z0-9_]*.
func (s *Scanner) scanIdentifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	kind := token.Lookup(text)

	switch kind {
	case token.TRUE:
		return s.emitLiteral(kind, true)
	case token.FALSE:
		return s.emitLiteral(kind, false)
	case token.NIL:
		return s.emitLiteral(kind, nil)
	default:
		return s.emit(kind)
	}
}

// emit builds a token for the lexeme scanned since start, with no literal.
func (s *Scanner) emit(kind token.Kind) token.Token {
	return s.emitLiteral(kind, nil)
}

// emitLiteral builds a token for the lexeme scanned since start, carrying
// the given literal value.
func (s *Scanner) emitLiteral(kind token.Kind, literal token.Literal) token.Token {
	lexeme := s.src[s.start:s.current]
	column := s.start - strings.LastIndexByte(s.src[:s.start], '\n')
	return token.New(kind, lexeme, literal, s.line, column)
}

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

// match consumes the current byte and returns true only if it equals
// expected; otherwise it leaves the cursor untouched. This implements the
// greedy longest-match rule for two-character operators.
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the current byte without consuming it, or 0 at end of
// source.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
