package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseDecl dispatches to the declaration parser matching the current
// keyword: VCON, FCON, CCON, or PRINCIPIUM.
func (p *Parser) parseDecl() ast.Node {
	switch p.cur.Kind {
	case token.VCON:
		return p.parseVarDecl()
	case token.FCON:
		return p.parseFuncDecl()
	case token.CCON:
		return p.parseClassDecl()
	case token.PRINCIPIUM:
		return p.parseConstDecl()
	default:
		p.errorf(diag.PUnexpectedToken, p.cur.Pos, "unexpected token %s %q at start of declaration", p.cur.Kind, p.cur.Literal)
		return nil
	}
}

// parseVarDecl is `VCON name: type [= init];`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	pos := p.cur.Pos
	p.consume(token.VCON)
	name := p.consume(token.IDENT).Literal
	p.consume(token.COLON)
	typ := p.parseType(false)

	decl := &ast.VarDecl{Base: ast.NewBase(pos), Name: name, Type: typ}
	if p.at(token.ASSIGN) {
		p.advance()
		decl.Init = p.parseExpr()
	}
	p.consume(token.SEMI)
	return decl
}

// parseConstDecl is `PRINCIPIUM name: type = init;`.
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	pos := p.cur.Pos
	p.consume(token.PRINCIPIUM)
	name := p.consume(token.IDENT).Literal
	p.consume(token.COLON)
	typ := p.parseType(false)
	p.consume(token.ASSIGN)
	init := p.parseExpr()
	p.consume(token.SEMI)
	return &ast.ConstDecl{Base: ast.NewBase(pos), Name: name, Type: typ, Init: init}
}

// parseFuncDecl is `FCON name: returnType (params) -> { body };`. The name
// is usually an identifier, but `subjecto` lexes as its own keyword and is
// accepted here too so the main function parses through the same path.
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	pos := p.cur.Pos
	p.consume(token.FCON)
	var name string
	if p.at(token.SUBJECTO) {
		name = p.cur.Literal
		p.advance()
	} else {
		name = p.consume(token.IDENT).Literal
	}
	p.consume(token.COLON)
	ret := p.parseType(true)
	params := p.parseParamList()
	p.consume(token.ARROW_R)
	body := p.parseBlock()
	p.consume(token.SEMI)
	return &ast.FuncDecl{Base: ast.NewBase(pos), Name: name, ReturnType: ret, Params: params, Body: body}
}

// parseClassDecl parses `CCON name { ... };` without semantic processing
// beyond storing its member declarations. CCON is reserved syntax; the
// validator and emitter treat the stored class as opaque.
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	pos := p.cur.Pos
	p.consume(token.CCON)
	name := p.consume(token.IDENT).Literal
	p.consume(token.LBRACE)
	var members []ast.Node
	for !p.failed() && !p.at(token.RBRACE) && !p.at(token.EOF) {
		members = append(members, p.parseDefineItem())
	}
	p.consume(token.RBRACE)
	p.consume(token.SEMI)
	return &ast.ClassDecl{Base: ast.NewBase(pos), Name: name, Members: members}
}
