/*
File   : gsc/internal/parser/parser.go
Package: parser
*/

// Package parser implements GSC's recursive-descent, operator-precedence
// parser: spec.md §4.2's grammar, the for-loop desugaring, the
// assignment r-value-to-l-value rewrite, and panic-free error recovery
// via synchronization.
//
// Grounded on akashmaji946-go-mix's parser.Parser for the overall shape
// (an Errors []string slice plus HasErrors/GetErrors, rather than a
// single first-error-wins result) and on original_source's
// src/parser.cpp for the synchronize() token set and the exact
// desugaring shape for `for`. go-mix's parser is itself a Pratt parser
// (precedence-table driven); GSC's grammar is a fixed cascade of
// precedence levels instead, so the per-level recursive-descent
// functions below follow spec.md §4.2 directly rather than go-mix's
// table-driven loop — the textural conventions (doc comments, the
// Errors-collection pattern, one method per grammar rule) are what
// carries over.
package parser

import (
	"fmt"

	"github.com/akashmaji946/gsc/internal/ast"
	"github.com/akashmaji946/gsc/internal/diagnostics"
	"github.com/akashmaji946/gsc/internal/token"
)

// Parser consumes a finite token slice (always EOF-terminated) and
// produces a statement list, reporting syntax errors through a shared
// Diagnostics rather than panicking.
type Parser struct {
	tokens  []token.Token
	current int
	diags   *diagnostics.Diagnostics
}

// New creates a Parser over tokens, reporting errors to diags.
func New(tokens []token.Token, diags *diagnostics.Diagnostics) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// Parse runs `program → declaration* EOF`, returning every declaration
// that parsed successfully. A declaration that fails is dropped after
// its error is reported and the parser is resynchronized; callers check
// diags.HadError() to decide whether to execute the result.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s, ok := p.declaration(); ok {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// parseError is the internal sentinel a failed production returns so
// that Parse's declaration loop knows to synchronize. It is never
// exposed outside this package — the diagnostic has already been
// reported by the time it is constructed.
type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

// declaration → varDecl | statement
func (p *Parser) declaration() (ast.Stmt, bool) {
	var s ast.Stmt
	var err error
	if p.check(token.VAR) {
		p.advance()
		s, err = p.varDecl()
	} else {
		s, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil, false
	}
	return s, true
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.Var{Name: name, Init: init}, nil
}

// statement → printStmt | ifStmt | whileStmt | forStmt | block | exprStmt
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.Block{Statements: stmts}, nil
	default:
		return p.exprStmt()
	}
}

// printStmt → "print" expression ";"
func (p *Parser) printStmt() (ast.Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.Print{Expr: e}, nil
}

// exprStmt → expression ";"
func (p *Parser) exprStmt() (ast.Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.Expression{Expr: e}, nil
}

// block → "{" declaration* "}" ; the opening brace is already consumed
// by the caller (statement's match on LEFT_BRACE).
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		s, ok := p.declaration()
		if ok {
			stmts = append(stmts, s)
		}
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return ast.If{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.While{Condition: cond, Body: body}, nil
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";"
//	expression? ")" statement
//
// The parser never produces a For node: it builds the three optional
// parts, then rewrites them directly into While (+ enclosing Block)
// per spec.md §4.2's desugaring table.
func (p *Parser) forStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.check(token.VAR):
		p.advance()
		init, err = p.varDecl()
	default:
		init, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = ast.Block{Statements: []ast.Stmt{body, ast.Expression{Expr: incr}}}
	}
	if cond == nil {
		cond = ast.Literal{Value: true}
	}
	var loop ast.Stmt = ast.While{Condition: cond, Body: body}
	if init != nil {
		loop = ast.Block{Statements: []ast.Stmt{init, loop}}
	}
	return loop, nil
}

// expression → assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment → ( IDENT "=" assignment ) | logic_or
//
// Parses the left side as an ordinary logic_or expression first; only
// once a trailing "=" is seen is the already-parsed left re-examined to
// see whether it is a valid assignment target. This is the r-value-to
// l-value rewrite spec.md §4.2 calls for, rather than a dedicated
// l-value grammar.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(ast.Variable); ok {
			return ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) logicOr() (ast.Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// logic_and → equality ( "and" equality )*
func (p *Parser) logicAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

// primary → "nil" | "true" | "false" | NUMBER | STRING | IDENT | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return ast.Literal{Value: false}, nil
	case p.match(token.TRUE):
		return ast.Literal{Value: true}, nil
	case p.match(token.NIL):
		return ast.Literal{Value: nil}, nil
	case p.match(token.NUMBER, token.STRING):
		return ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.IDENTIFIER):
		return ast.Variable{Name: p.previous()}, nil
	case p.match(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.Grouping{Inner: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

// synchronize discards tokens after a parse error until it reaches a
// plausible statement boundary: the token just consumed was a ';', or
// the next token starts a new statement-level construct. Grounded on
// original_source's Parser::synchronize token set.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT:
			return
		}
		p.advance()
	}
}

// --- token cursor primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.END_OF_FILE
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the next token if it has kind k, otherwise
// reports message at the current token and returns a parseError.
func (p *Parser) consume(k token.Kind, message string) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports a syntax diagnostic positioned at tok and returns the
// internal sentinel error that unwinds the current production back to
// the declaration loop for synchronization.
func (p *Parser) errorAt(tok token.Token, message string) error {
	p.diags.ErrorAtToken(tok, message)
	return &parseError{msg: fmt.Sprintf("%s: %s", tok.Kind, message)}
}
