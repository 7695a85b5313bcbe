package parser

import (
	"github.com/arcana-lang/arcana/internal/ast"
	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

// parseDictLit is `{ k1: v1, k2: v2, ... }`, trailing comma optional. It is
// reached only from parsePrimary, where the `{` can't be mistaken for a
// block body: blocks only follow `->`, VERUM, FALSUM, or a loop header.
func (p *Parser) parseDictLit() *ast.DictLit {
	pos := p.cur.Pos
	p.consume(token.LBRACE)
	var pairs []ast.DictPair
	for !p.failed() && !p.at(token.RBRACE) {
		key := p.parseExpr()
		p.consume(token.COLON)
		value := p.parseExpr()
		pairs = append(pairs, ast.DictPair{Key: key, Value: value})
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.consume(token.RBRACE)
	return &ast.DictLit{Base: ast.NewBase(pos), Pairs: pairs}
}

// parseFStrLit converts a lexed FSTRING token's raw FParts into an
// ast.FStrLit, re-parsing each expression span through a fresh Parser over
// just that span: the lexer only splits text from expression source, the
// expression grammar itself runs here rather than at lex time.
func (p *Parser) parseFStrLit(tok token.Token) *ast.FStrLit {
	lit := &ast.FStrLit{Base: ast.NewBase(tok.Pos)}
	for _, part := range tok.FParts {
		if !part.Expr {
			lit.Parts = append(lit.Parts, ast.FStrPart{Text: part.Text})
			continue
		}
		sub := New(part.Text)
		expr := sub.parseExpr()
		if sub.failed() {
			if !p.failed() {
				p.err = diag.New(diag.Parse, diag.PUnexpectedToken, "malformed interpolation expression: "+sub.err.Message, tok.Pos)
			}
			continue
		}
		lit.Parts = append(lit.Parts, ast.FStrPart{Expr: expr})
	}
	return lit
}
