// Package parser implements Arcana's recursive-descent parser: a single
// pass over the lexer's token stream with one-token lookahead, built
// around peek/consume/at primitives.
//
// Grammar concerns are split one file per syntactic category
// (parser_program.go, parser_declarations.go, parser_statements.go,
// parser_loops.go, parser_expressions.go, parser_literals.go,
// parser_helpers.go). Precedence is a tier-per-function climb, so the
// nine fixed levels (eight tiers plus unary minus between power and
// primary) read directly off the call graph (parseOr → parseAnd →
// parseNot → parseComparison → parseAdditive → parseMultiplicative →
// parsePower → parseUnaryNeg → parsePrimary).
package parser

import (
	"fmt"

	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/lexer"
	"github.com/arcana-lang/arcana/internal/token"
)

// Parser holds the single-pass parsing state: a lexer, a one-token
// lookahead buffer, and the first diagnostic encountered. There is no
// error recovery; the first diagnostic aborts the phase.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	err *diag.Diagnostic
}

// New creates a Parser over src and primes cur and the one-token
// lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

// Err returns the first diagnostic recorded during parsing, or nil if
// parsing completed without one.
func (p *Parser) Err() *diag.Diagnostic { return p.err }

func (p *Parser) failed() bool { return p.err != nil }

// advance pulls the next token from the lexer into peek, shifting the old
// peek into cur. A lexical failure is recorded as the parser's error and
// from then on advance pulls no further tokens from the lexer (it only
// copies the stale peek into cur), since failed() already short-circuits
// all parsing.
func (p *Parser) advance() {
	p.cur = p.peek
	if p.failed() {
		return
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		lexErr := err.(*lexer.LexError)
		p.err = diag.New(diag.Lex, lexErr.Code, lexErr.Message, lexErr.Pos)
		return
	}
	p.peek = tok
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

// peekIs reports whether the lookahead token has kind k.
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// consume requires the current token to have kind k, advances past it,
// and returns it; otherwise it records P0001 EXPECTED_TOKEN and returns
// the zero Token.
func (p *Parser) consume(k token.Kind) token.Token {
	if p.failed() {
		return token.Token{}
	}
	if !p.at(k) {
		p.errorf(diag.PExpectedToken, p.cur.Pos, "expected %s, found %s %q", k, p.cur.Kind, p.cur.Literal)
		return token.Token{}
	}
	t := p.cur
	p.advance()
	return t
}

// errorf records the first diagnostic only; later calls are no-ops so the
// parser's "first error aborts" contract holds regardless of how many
// parse functions still run to completion on the call stack above it.
func (p *Parser) errorf(code string, pos token.Position, format string, args ...interface{}) {
	if p.failed() {
		return
	}
	p.err = diag.New(diag.Parse, code, fmt.Sprintf(format, args...), pos)
}

// Parse runs the full grammar: <FONS> imports </FONS>, <INTRODUCTIO>
// defines </INTRODUCTIO>, <DOCTRINA> subjecto </DOCTRINA>.
func (p *Parser) Parse() (*ast.Program, *diag.Diagnostic) {
	prog := p.parseProgram()
	if p.failed() {
		return nil, p.err
	}
	return prog, nil
}

// ParseStatement parses a single statement and expects end-of-input to
// follow immediately after it. It exists for internal/replshell, which
// feeds one line at a time through the front-end without the surrounding
// <FONS>/<INTRODUCTIO>/<DOCTRINA> section tags a full program requires;
// it does not relax any grammar rule used by Parse.
func (p *Parser) ParseStatement() (ast.Stmt, *diag.Diagnostic) {
	stmt := p.parseStmt()
	if p.failed() {
		return nil, p.err
	}
	if !p.at(token.EOF) {
		p.errorf(diag.PUnexpectedToken, p.cur.Pos, "unexpected %s %q after statement", p.cur.Kind, p.cur.Literal)
		return nil, p.err
	}
	return stmt, nil
}
