// Package scanner turns Lox source text into a stream of tokens.
package scanner

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	toks "github.com/mna/lox/lang/token"
)

// Scanner tokenizes a single source file for the parser to consume. It is
// greedy and maximal-munch: at each position it consumes the longest
// sequence of bytes that forms a valid token.
type Scanner struct {
	src []byte
	err func(pos token.Position, msg string)

	start   int // start of the token currently being scanned
	current int // position of the next unread byte
	line    int
}

// New returns a Scanner ready to tokenize src. Scan errors are reported to
// errHandler, which may be nil to silently ignore them.
func New(src []byte, errHandler func(pos token.Position, msg string)) *Scanner {
	// non-UTF-8 bytes are lossily replaced; identifiers are ASCII-only per
	// spec so this never affects valid programs.
	clean := []byte(strings.ToValidUTF8(string(src), string(replacementChar)))
	if errHandler == nil {
		errHandler = func(token.Position, string) {}
	}
	return &Scanner{src: clean, err: errHandler, line: 1}
}

var replacementChar = []byte("�")

// ScanTokens scans the entire source and returns every token, including a
// trailing EOF. Errors encountered are reported through errHandler; scanning
// always continues to completion.
func ScanTokens(src []byte, errHandler func(pos token.Position, msg string)) []toks.Token {
	s := New(src, errHandler)
	var out []toks.Token
	for {
		tok := s.Scan()
		out = append(out, tok)
		if tok.Kind == toks.EOF {
			return out
		}
	}
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.current]
	s.current++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.err(token.Position{Line: line}, fmt.Sprintf(format, args...))
}

// Scan returns the next token. At end of input it keeps returning EOF.
// Illegal characters are reported and skipped so a single Scan call still
// returns a real token (or EOF) rather than recursing per bad byte.
func (s *Scanner) Scan() toks.Token {
	for {
		s.skipWhitespaceAndComments()
		s.start = s.current
		if s.atEnd() {
			return toks.Token{Kind: toks.EOF, Line: s.line}
		}
		if tok, ok := s.scan1(); ok {
			return tok
		}
	}
}

func (s *Scanner) scan1() (toks.Token, bool) {
	c := s.advance()
	switch {
	case isDigit(c):
		return s.number(), true
	case isAlpha(c):
		return s.identifier(), true
	}

	switch c {
	case '(':
		return s.make(toks.LEFT_PAREN), true
	case ')':
		return s.make(toks.RIGHT_PAREN), true
	case '{':
		return s.make(toks.LEFT_BRACE), true
	case '}':
		return s.make(toks.RIGHT_BRACE), true
	case ',':
		return s.make(toks.COMMA), true
	case '.':
		return s.make(toks.DOT), true
	case '-':
		return s.make(toks.MINUS), true
	case '+':
		return s.make(toks.PLUS), true
	case ';':
		return s.make(toks.SEMICOLON), true
	case '*':
		return s.make(toks.STAR), true
	case '!':
		if s.match('=') {
			return s.make(toks.BANG_EQUAL), true
		}
		return s.make(toks.BANG), true
	case '=':
		if s.match('=') {
			return s.make(toks.EQUAL_EQUAL), true
		}
		return s.make(toks.EQUAL), true
	case '<':
		if s.match('=') {
			return s.make(toks.LESS_EQUAL), true
		}
		return s.make(toks.LESS), true
	case '>':
		if s.match('=') {
			return s.make(toks.GREATER_EQUAL), true
		}
		return s.make(toks.GREATER), true
	case '/':
		return s.make(toks.SLASH), true
	case '"':
		return s.string(), true
	default:
		s.errorf(s.line, "Unexpected character.")
		return toks.Token{}, false
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) make(kind toks.Kind) toks.Token {
	return toks.Token{Kind: kind, Lexeme: string(s.src[s.start:s.current]), Line: s.line}
}

func (s *Scanner) number() toks.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := string(s.src[s.start:s.current])
	v, _ := strconv.ParseFloat(lexeme, 64)
	return toks.Token{
		Kind:    toks.NUMBER,
		Lexeme:  lexeme,
		Literal: toks.Literal{Kind: toks.NumberLiteral, Number: v},
		Line:    s.line,
	}
}

func (s *Scanner) identifier() toks.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := string(s.src[s.start:s.current])
	kind := toks.LookupIdent(lexeme)
	tok := toks.Token{Kind: kind, Lexeme: lexeme, Line: s.line}
	switch kind {
	case toks.TRUE:
		tok.Literal = toks.Literal{Kind: toks.BoolLiteral, Bool: true}
	case toks.FALSE:
		tok.Literal = toks.Literal{Kind: toks.BoolLiteral, Bool: false}
	case toks.NIL:
		tok.Literal = toks.Literal{Kind: toks.NilLiteral}
	}
	return tok
}

func (s *Scanner) string() toks.Token {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.errorf(s.line, "Unterminated string.")
		return toks.Token{Kind: toks.ILLEGAL, Lexeme: string(s.src[s.start:s.current]), Line: s.line}
	}
	s.advance() // closing quote
	val := string(s.src[s.start+1 : s.current-1])
	return toks.Token{
		Kind:    toks.STRING,
		Lexeme:  string(s.src[s.start:s.current]),
		Literal: toks.Literal{Kind: toks.StringLiteral, Str: val},
		Line:    s.line,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
