package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseStmt dispatches on the current token. VCON and PRINCIPIUM reuse the
// declaration parsers directly: VarDecl and ConstDecl satisfy ast.Stmt so a
// local declaration can appear anywhere a statement can.
func (p *Parser) parseStmt() ast.Stmt {
	if p.failed() {
		return nil
	}
	switch p.cur.Kind {
	case token.VCON:
		return p.parseVarDecl()
	case token.PRINCIPIUM:
		return p.parseConstDecl()
	case token.SI:
		return p.parseIfStmt()
	case token.RECURSIO:
		return p.parseLoopStmt()
	case token.NIHIL:
		return p.parseNihilStmt()
	case token.EFFIGIUM:
		return p.parseBreakStmt()
	case token.PROXIMUM:
		return p.parseContinueStmt()
	case token.REDITUS:
		return p.parseReturnStmt()
	case token.IDENT:
		return p.parseIdentStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseNihilStmt is the standalone `nihil;` no-op. `nihil` in any other
// position is P0040.
func (p *Parser) parseNihilStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.NIHIL)
	if p.failed() {
		return nil
	}
	if !p.at(token.SEMI) {
		p.errorf(diag.PNihilNotExpr, pos, "nihil is only valid as the standalone statement 'nihil;'")
		return nil
	}
	p.advance()
	return &ast.NihilStmt{Base: ast.NewBase(pos)}
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.EFFIGIUM)
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.BreakStmt{Base: ast.NewBase(pos)}
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.PROXIMUM)
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.ContinueStmt{Base: ast.NewBase(pos)}
}

// parseReturnStmt is `REDITUS [expr];`.
func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.REDITUS)
	if p.failed() {
		return nil
	}
	var value ast.Expr
	if !p.at(token.SEMI) {
		value = p.parseExpr()
	}
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.ReturnStmt{Base: ast.NewBase(pos), Value: value}
}

// parseIdentStmt handles the three statement forms led by an identifier:
// Assign (`x = expr;`), Move (`x <- y;`, RHS must be an identifier, else
// P0021), and everything else, which falls through to a full expression
// parse — the call-expression form `f() <- (args);` included.
func (p *Parser) parseIdentStmt() ast.Stmt {
	pos := p.cur.Pos
	name := p.cur.Literal

	if p.peekIs(token.ASSIGN) {
		p.advance()
		p.advance()
		value := p.parseExpr()
		p.consume(token.SEMI)
		if p.failed() {
			return nil
		}
		return &ast.AssignStmt{Base: ast.NewBase(pos), Target: name, Value: value}
	}

	if p.peekIs(token.ARROW_L) {
		p.advance()
		p.advance()
		if !p.at(token.IDENT) {
			p.errorf(diag.PInvalidMove, p.cur.Pos, "move source must be an identifier, found %s %q", p.cur.Kind, p.cur.Literal)
			return nil
		}
		source := p.cur.Literal
		p.advance()
		// The source must be a bare identifier: anything following it
		// other than ';' means the right-hand side was a larger
		// expression (a call, an arithmetic chain), which is not a move.
		if !p.at(token.SEMI) {
			p.errorf(diag.PInvalidMove, p.cur.Pos, "move source must be a bare identifier, found %s %q after %q", p.cur.Kind, p.cur.Literal, source)
			return nil
		}
		p.advance()
		return &ast.MoveStmt{Base: ast.NewBase(pos), Target: name, Source: source}
	}

	return p.parseExprStmt()
}

// parseExprStmt parses a bare expression statement. A resulting CallExpr is
// wrapped as CallStmt so the emitter can special-case it without a type
// assertion at every call site.
func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.cur.Pos
	expr := p.parseExpr()
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	if call, ok := expr.(*ast.CallExpr); ok {
		return &ast.CallStmt{Base: ast.NewBase(pos), Call: call}
	}
	return &ast.ExprStmt{Base: ast.NewBase(pos), X: expr}
}

// parseIfStmt is `SI propositio:(cond) VERUM { ... } [FALSUM { ... }];`.
func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.cur.Pos
	p.consume(token.SI)
	p.consume(token.PROPOSITIO)
	p.consume(token.COLON)
	cond := p.parseExpr()
	p.consume(token.VERUM)
	verum := p.parseBlock()

	var falsum []ast.Stmt
	if p.at(token.FALSUM) {
		p.advance()
		falsum = p.parseBlock()
	}
	p.consume(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.IfStmt{Base: ast.NewBase(pos), Cond: cond, Verum: verum, Falsum: falsum}
}
