// Package parser implements the recursive-descent parser that turns a token
// stream into a statement tree, with panic-mode error recovery at statement
// boundaries.
package parser

import (
	"errors"
	"fmt"
	gotoken "go/token"
	"sync/atomic"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// Parse parses a complete token stream (as produced by scanner.ScanTokens,
// including the trailing EOF) into a list of top-level statements. The
// returned error, if non-nil, is a scanner.ErrorList.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := &parser{tokens: tokens}
	stmts := p.program()
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// parser parses a fixed token slice, in one pass, with no backtracking
// beyond a single token of lookahead.
type parser struct {
	tokens  []token.Token
	current int
	errors  scanner.ErrorList
}

// errSynchronize is panicked by expect-like helpers on a parse error and
// recovered at the statement boundary in declaration(), which then calls
// synchronize to skip to the next plausible statement start.
var errSynchronize = errors.New("parse error")

// nextExprID is process-wide, not per-parse: a REPL parses each line with a
// fresh parser, but closures captured by an earlier line are evaluated
// again later, and their expressions' IDs must never collide with a later
// line's.
var nextExprID atomic.Int64

func (p *parser) newID() ast.ExprID {
	return ast.ExprID(nextExprID.Add(1))
}

func (p *parser) peek() token.Token { return p.tokens[p.current] }

func (p *parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the given kind,
// otherwise it reports a parse error and panics errSynchronize.
func (p *parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(errSynchronize)
}

func (p *parser) errorAt(tok token.Token, message string) {
	var where string
	switch {
	case tok.Kind == token.EOF:
		where = " at end"
	default:
		where = " at '" + tok.Lexeme + "'"
	}
	p.errors.Add(gotoken.Position{Line: tok.Line}, fmt.Sprintf("Error%s: %s", where, message))
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so the parser can keep collecting errors from the rest of the source.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
