package parser

import (
	"strconv"

	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseExpr is the expression grammar's entry point: the lowest-precedence
// tier, `aut`.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

// parseOr is precedence tier 1: `aut`, left-associative.
func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for !p.failed() && p.at(token.AUT) {
		pos := p.cur.Pos
		p.advance()
		right := p.parseAnd()
		left = &ast.BinOp{Base: ast.NewBase(pos), Op: ast.OpOr, LHS: left, RHS: right}
	}
	return left
}

// parseAnd is precedence tier 2: `et`, left-associative.
func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for !p.failed() && p.at(token.ET) {
		pos := p.cur.Pos
		p.advance()
		right := p.parseNot()
		left = &ast.BinOp{Base: ast.NewBase(pos), Op: ast.OpAnd, LHS: left, RHS: right}
	}
	return left
}

// parseNot is precedence tier 3: unary `non`, right-associative and
// stackable (`non non x` parses).
func (p *Parser) parseNot() ast.Expr {
	if p.at(token.NON) {
		pos := p.cur.Pos
		p.advance()
		operand := p.parseNot()
		return &ast.Unary{Base: ast.NewBase(pos), Op: ast.OpNot, Operand: operand}
	}
	return p.parseComparison()
}

// comparisonOps maps each comparison token to its BinOpKind.
var comparisonOps = map[token.Kind]ast.BinOpKind{
	token.EQ:  ast.OpEq,
	token.NEQ: ast.OpNotEq,
	token.LT:  ast.OpLt,
	token.GT:  ast.OpGt,
	token.LE:  ast.OpLe,
	token.GE:  ast.OpGe,
}

// parseComparison is precedence tier 4: exactly one comparison operator is
// accepted. A second one immediately following is P0002, since comparisons
// do not chain (`a < b == c` is rejected).
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	if p.failed() {
		return left
	}
	op, ok := comparisonOps[p.cur.Kind]
	if !ok {
		return left
	}
	pos := p.cur.Pos
	p.advance()
	right := p.parseAdditive()
	result := ast.Expr(&ast.BinOp{Base: ast.NewBase(pos), Op: op, LHS: left, RHS: right})
	if p.failed() {
		return result
	}
	if _, ok := comparisonOps[p.cur.Kind]; ok {
		p.errorf(diag.PUnexpectedToken, p.cur.Pos, "comparison operators do not chain: unexpected %s after comparison", p.cur.Kind)
	}
	return result
}

// parseAdditive is precedence tier 5: `+ -`, left-associative.
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for !p.failed() {
		var op ast.BinOpKind
		switch p.cur.Kind {
		case token.PLUS:
			op = ast.OpAdd
		case token.MINUS:
			op = ast.OpSub
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinOp{Base: ast.NewBase(pos), Op: op, LHS: left, RHS: right}
	}
	return left
}

// parseMultiplicative is precedence tier 6: `* / %`, left-associative.
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parsePower()
	for !p.failed() {
		var op ast.BinOpKind
		switch p.cur.Kind {
		case token.STAR:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpDiv
		case token.PERCENT:
			op = ast.OpMod
		default:
			return left
		}
		pos := p.cur.Pos
		p.advance()
		right := p.parsePower()
		left = &ast.BinOp{Base: ast.NewBase(pos), Op: op, LHS: left, RHS: right}
	}
	return left
}

// parsePower is precedence tier 7: `**`, right-associative (`a ** b ** c`
// parses as `a ** (b ** c)`).
func (p *Parser) parsePower() ast.Expr {
	left := p.parseUnaryNeg()
	if p.failed() || !p.at(token.POW) {
		return left
	}
	pos := p.cur.Pos
	p.advance()
	right := p.parsePower()
	return &ast.BinOp{Base: ast.NewBase(pos), Op: ast.OpPow, LHS: left, RHS: right}
}

// parseUnaryNeg binds tighter than `**`: it supplies parsePower's
// operands, so `-a ** b` parses as `(-a) ** b`, the negation attaching
// to the base rather than the whole power expression.
func (p *Parser) parseUnaryNeg() ast.Expr {
	if p.at(token.MINUS) {
		pos := p.cur.Pos
		p.advance()
		operand := p.parseUnaryNeg()
		return &ast.Unary{Base: ast.NewBase(pos), Op: ast.OpNeg, Operand: operand}
	}
	return p.parsePrimary()
}

// parsePrimary is precedence tier 8: identifiers, call expressions, literals,
// f-strings, dict literals, and parenthesized expressions.
func (p *Parser) parsePrimary() ast.Expr {
	if p.failed() {
		return nil
	}
	switch p.cur.Kind {
	case token.IDENT:
		name := p.cur.Literal
		pos := p.cur.Pos
		p.advance()
		if p.at(token.LPAREN) {
			return p.parseCallExprTail(name, pos)
		}
		return &ast.Ident{Base: ast.NewBase(pos), Name: name}

	case token.INT:
		pos, lit := p.cur.Pos, p.cur.Literal
		p.advance()
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.errorf(diag.PInternal, pos, "malformed integer literal %q", lit)
			return nil
		}
		return &ast.IntLit{Base: ast.NewBase(pos), Value: v}

	case token.REAL:
		pos, lit := p.cur.Pos, p.cur.Literal
		p.advance()
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf(diag.PInternal, pos, "malformed real literal %q", lit)
			return nil
		}
		return &ast.RealLit{Base: ast.NewBase(pos), Value: v}

	case token.STRING:
		pos, lit := p.cur.Pos, p.cur.Literal
		p.advance()
		return &ast.StrLit{Base: ast.NewBase(pos), Value: lit}

	case token.FSTRING:
		tok := p.cur
		p.advance()
		return p.parseFStrLit(tok)

	case token.LBRACE:
		return p.parseDictLit()

	case token.LPAREN:
		p.advance()
		expr := p.parseExpr()
		p.consume(token.RPAREN)
		return expr

	case token.NIHIL:
		p.errorf(diag.PNihilNotExpr, p.cur.Pos, "nihil is not a value expression")
		return nil

	default:
		p.errorf(diag.PUnexpectedToken, p.cur.Pos, "unexpected token %s %q in expression", p.cur.Kind, p.cur.Literal)
		return nil
	}
}

// parseCallExprTail parses the remainder of `name() <- (args)` once name
// and its position have already been consumed: the parentheses right after
// the callee must be empty, and arguments follow the `<-` separator.
func (p *Parser) parseCallExprTail(name string, pos token.Position) ast.Expr {
	p.consume(token.LPAREN)
	p.consume(token.RPAREN)
	p.consume(token.ARROW_L)
	args := p.parseArgList()
	return &ast.CallExpr{Base: ast.NewBase(pos), Name: name, Args: args}
}
