package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseProgram demands the three sections in order: <FONS> imports,
// <INTRODUCTIO> defines, <DOCTRINA> main.
func (p *Parser) parseProgram() *ast.Program {
	startPos := p.cur.Pos
	prog := &ast.Program{Base: ast.NewBase(startPos)}

	p.consume(token.FONS_OPEN)
	for !p.failed() && !p.at(token.FONS_CLOSE) && !p.at(token.EOF) {
		prog.Imports = append(prog.Imports, p.parseImportEntry())
	}
	p.consume(token.FONS_CLOSE)
	if p.failed() {
		return nil
	}

	p.consume(token.INTRODUCTIO_OPEN)
	for !p.failed() && !p.at(token.INTRODUCTIO_CLOSE) && !p.at(token.EOF) {
		prog.Defines = append(prog.Defines, p.parseDefineItem())
	}
	p.consume(token.INTRODUCTIO_CLOSE)
	if p.failed() {
		return nil
	}

	p.consume(token.DOCTRINA_OPEN)
	if p.failed() {
		return nil
	}
	main := p.parseMainFunc()
	p.consume(token.DOCTRINA_CLOSE)
	if p.failed() {
		return nil
	}
	prog.Main = main
	return prog
}

// parseImportEntry reads one free-form import descriptor: a string
// literal naming the module, terminated by ';'. Resolving the name is the
// import resolver's job; the parser only records it.
func (p *Parser) parseImportEntry() ast.ImportEntry {
	pos := p.cur.Pos
	tok := p.consume(token.STRING)
	p.consume(token.SEMI)
	return ast.ImportEntry{Base: ast.NewBase(pos), Raw: tok.Literal}
}

// parseDefineItem parses one <INTRODUCTIO> entry: a declaration or a
// statement, dispatching on the first token.
func (p *Parser) parseDefineItem() ast.Node {
	switch p.cur.Kind {
	case token.VCON, token.FCON, token.CCON, token.PRINCIPIUM:
		return p.parseDecl()
	default:
		return p.parseStmt()
	}
}

// parseMainFunc requires exactly one `FCON subjecto: nihil () -> { ... };`
// inside <DOCTRINA> (P0010 when absent or misnamed, P0011 on a wrong
// signature).
func (p *Parser) parseMainFunc() *ast.FuncDecl {
	pos := p.cur.Pos
	if !p.at(token.FCON) {
		p.errorf(diag.PMainSubjectoRequired, pos, "main section must contain FCON subjecto: nihil ()")
		return nil
	}
	fn := p.parseFuncDecl()
	if p.failed() {
		return nil
	}
	if fn.Name != "subjecto" {
		p.errorf(diag.PMainSubjectoRequired, pos, "main function must be named 'subjecto', found %q", fn.Name)
		return nil
	}
	if fn.ReturnType != ast.Nihil || len(fn.Params) != 0 {
		p.errorf(diag.PMainNihilRequired, pos, "subjecto must be declared as 'nihil ()' with no parameters")
		return nil
	}
	return fn
}
