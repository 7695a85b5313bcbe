package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseLoopStmt is `RECURSIO(propositio: cond, [quota: expr|name = expr],
// [acceleratio: step]) { body };`. The three labeled clauses are accepted
// in that fixed order, `propositio` is required, and an unrecognized label
// is P0030.
func (p *Parser) parseLoopStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.RECURSIO)
	p.consume(token.LPAREN)
	if p.failed() {
		return nil
	}

	loop := &ast.LoopStmt{Base: ast.NewBase(pos)}

	if !p.at(token.PROPOSITIO) {
		p.errorf(diag.PLoopPropositioRequired, p.cur.Pos, "loop header must begin with 'propositio', found %s %q", p.cur.Kind, p.cur.Literal)
		return nil
	}
	p.advance()
	p.consume(token.COLON)
	loop.Cond = p.parseExpr()

	if p.at(token.COMMA) {
		p.advance()
		if p.at(token.QUOTA) {
			p.advance()
			p.consume(token.COLON)
			p.parseQuotaClause(loop)
		} else if p.at(token.ACCELERATIO) {
			p.parseAcceleratioClause(loop)
		} else {
			p.errorf(diag.PUnknownLoopHeader, p.cur.Pos, "unknown loop header clause %s %q", p.cur.Kind, p.cur.Literal)
			return nil
		}
	}

	if p.at(token.COMMA) {
		p.advance()
		if p.at(token.ACCELERATIO) {
			p.parseAcceleratioClause(loop)
		} else {
			p.errorf(diag.PUnknownLoopHeader, p.cur.Pos, "unknown loop header clause %s %q", p.cur.Kind, p.cur.Literal)
			return nil
		}
	}

	p.consume(token.RPAREN)
	body := p.parseBlock()
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	loop.Body = body
	return loop
}

// parseQuotaClause parses the `quota:` clause body, which is either a plain
// budget expression or a `name = expr` form binding a counter identifier.
func (p *Parser) parseQuotaClause(loop *ast.LoopStmt) {
	loop.HasQuota = true
	if p.at(token.IDENT) && p.peekIs(token.ASSIGN) {
		loop.QuotaVar = p.cur.Literal
		p.advance()
		p.advance()
		loop.QuotaInit = p.parseExpr()
		return
	}
	loop.QuotaBudget = p.parseExpr()
}

// parseAcceleratioClause parses `acceleratio: step`.
func (p *Parser) parseAcceleratioClause(loop *ast.LoopStmt) {
	p.consume(token.ACCELERATIO)
	p.consume(token.COLON)
	loop.Step = p.parseExpr()
}
