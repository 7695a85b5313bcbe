package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// typeKinds maps a type-keyword token.Kind to its ast.Type.
var typeKinds = map[token.Kind]ast.Type{
	token.TYPE_INTE:      ast.Inte,
	token.TYPE_REAL:      ast.Real,
	token.TYPE_FILUM:     ast.Filum,
	token.TYPE_VERUM:     ast.Verum,
	token.TYPE_ORDINATA:  ast.Ordinata,
	token.TYPE_CATALOGUS: ast.Catalogus,
}

// parseType consumes a type annotation: one of the six closed types, or
// `nihil` when allowNihil is set (valid only for a function's return type).
func (p *Parser) parseType(allowNihil bool) ast.Type {
	if p.failed() {
		return ""
	}
	if t, ok := typeKinds[p.cur.Kind]; ok {
		p.advance()
		return t
	}
	if allowNihil && p.at(token.NIHIL) {
		p.advance()
		return ast.Nihil
	}
	p.errorf(diag.PExpectedToken, p.cur.Pos, "expected a type, found %s %q", p.cur.Kind, p.cur.Literal)
	return ""
}

// parseParamList parses `(name: type, name: type, ...)`, including the
// empty-parameter-list case.
func (p *Parser) parseParamList() []ast.Param {
	p.consume(token.LPAREN)
	var params []ast.Param
	for !p.failed() && !p.at(token.RPAREN) {
		name := p.consume(token.IDENT).Literal
		p.consume(token.COLON)
		typ := p.parseType(false)
		params = append(params, ast.Param{Name: name, Type: typ})
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.consume(token.RPAREN)
	return params
}

// parseArgList parses a parenthesized, comma-separated expression list,
// used for both `<- (args)` call arguments and builtin calls.
func (p *Parser) parseArgList() []ast.Expr {
	p.consume(token.LPAREN)
	var args []ast.Expr
	for !p.failed() && !p.at(token.RPAREN) {
		args = append(args, p.parseExpr())
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.consume(token.RPAREN)
	return args
}

// parseBlock parses `{ stmt; stmt; ... }`.
func (p *Parser) parseBlock() []ast.Stmt {
	p.consume(token.LBRACE)
	var stmts []ast.Stmt
	for !p.failed() && !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	p.consume(token.RBRACE)
	return stmts
}
